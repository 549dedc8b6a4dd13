package school

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/grading"
)

// MaxConcurrentUsers is the number of simultaneous users the application is sized for.
const MaxConcurrentUsers = 50

const allYearsMarker = "ALL YEARS"

type Student struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Evaluations []grading.Evaluation `json:"evaluations"`
	CreatedAt   time.Time            `json:"created_at"` // UTC
}

// AddEvaluation appends an evaluation that belongs to this student.
func (s *Student) AddEvaluation(e grading.Evaluation) error {
	if e.StudentID() != s.ID {
		return errors.Wrapf(ErrStudentMismatch, "evaluation student_id %s does not match student %s", e.StudentID(), s.ID)
	}
	s.Evaluations = append(s.Evaluations, e)
	return nil
}

func (s Student) EvaluationCount() int { return len(s.Evaluations) }

// CopyEvaluations returns the student's evaluations; changing the result does not affect the student.
func (s Student) CopyEvaluations() []grading.Evaluation {
	evals := make([]grading.Evaluation, len(s.Evaluations))
	copy(evals, s.Evaluations)
	return evals
}

type Teacher struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Course    string    `json:"course"`
	AllYears  bool      `json:"all_years"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// IsAllYearsCourse reports whether a course is taught across all academic years.
func IsAllYearsCourse(course string) bool {
	return strings.Contains(strings.ToUpper(course), allYearsMarker)
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	ID   string `json:"id" validate:"required,code"`
	Name string `json:"name" validate:"required,notblank"`
}

func (ns *NewStudent) Validate() error {
	ns.ID = core.CleanString(ns.ID)
	ns.Name = core.CleanString(ns.Name)
	return core.Validate.Struct(ns)
}

// NewTeacher contains information needed to register a new Teacher.
type NewTeacher struct {
	ID     string `json:"id" validate:"required,code"`
	Name   string `json:"name" validate:"required,notblank"`
	Course string `json:"course" validate:"required,notblank"`
}

func (nt *NewTeacher) Validate() error {
	nt.ID = core.CleanString(nt.ID)
	nt.Name = core.CleanString(nt.Name)
	nt.Course = core.CleanString(nt.Course)
	return core.Validate.Struct(nt)
}

// NewEvaluation contains information needed to record an evaluation of a Student.
// An empty EvaluationID is generated; a nil Weight defaults to grading.DefaultWeightPercentage.
// Grade and weight ranges are checked by grading.NewEvaluation.
type NewEvaluation struct {
	StudentID    string   `json:"student_id" validate:"required"`
	EvaluationID string   `json:"evaluation_id" validate:"omitempty,code"`
	Grade        *float64 `json:"grade" validate:"required"`
	Weight       *float64 `json:"weight_percentage"`
}

func (ne *NewEvaluation) Validate() error {
	ne.StudentID = core.CleanString(ne.StudentID)
	ne.EvaluationID = core.CleanString(ne.EvaluationID)
	return core.Validate.Struct(ne)
}

func (ne NewEvaluation) weight() float64 {
	if ne.Weight == nil {
		return grading.DefaultWeightPercentage
	}
	return *ne.Weight
}
