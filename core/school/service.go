package school

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/grading"
)

var (
	// errors
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrStudentExists   = errors.New("a student with this id already exists")
	ErrTeacherExists   = errors.New("a teacher with this id already exists")
	ErrNoEvaluations   = errors.New("student has no evaluations")
	ErrStudentMismatch = errors.New("evaluation belongs to another student")
)

type (
	Repository interface {
		CreateStudent(ctx context.Context, student Student) (Student, error)
		GetStudent(ctx context.Context, id string) (Student, error)
		// QueryAllStudents lists students in registration order.
		QueryAllStudents(ctx context.Context) ([]Student, error)
		AddEvaluation(ctx context.Context, eval grading.Evaluation) (Student, error)
		CreateTeacher(ctx context.Context, teacher Teacher) (Teacher, error)
		GetTeacher(ctx context.Context, id string) (Teacher, error)
		// QueryAllTeachers lists teachers in registration order.
		QueryAllTeachers(ctx context.Context) ([]Teacher, error)
	}

	// Service owns the student and teacher registry and delegates grade math to a grading.Calculator.
	Service struct {
		repo   Repository
		calc   *grading.Calculator
		logger core.Logger
	}
)

func NewService(repo Repository, calc *grading.Calculator, logger core.Logger) *Service {
	if calc == nil {
		calc = grading.NewCalculator(nil, nil)
	}
	return &Service{repo: repo, calc: calc, logger: logger}
}

// NewCalculatorFromConfig builds a grading.Calculator from the configured policies.
func NewCalculatorFromConfig(conf *core.Config) (*grading.Calculator, error) {
	ap, err := grading.NewAttendancePolicy(conf.Grading.MinimumAttendance)
	if err != nil {
		return nil, errors.Wrap(err, "attendance policy")
	}
	ep, err := grading.NewExtraPointsPolicy(conf.Grading.ExtraPointValue)
	if err != nil {
		return nil, errors.Wrap(err, "extra points policy")
	}
	return grading.NewCalculator(ap, ep), nil
}

func (svc *Service) Calculator() *grading.Calculator { return svc.calc }

func (svc *Service) MinimumAttendance() float64 {
	return svc.calc.AttendancePolicy().Minimum()
}

// ReachedMinimum reports whether attendance satisfies the calculator's attendance policy.
func (svc *Service) ReachedMinimum(attendance float64) bool {
	return svc.calc.AttendancePolicy().IsSufficient(attendance)
}

func (svc *Service) AddStudent(ctx context.Context, ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	if _, err := svc.repo.GetStudent(ctx, ns.ID); err == nil {
		return Student{}, core.NewValidationError(ErrStudentExists, core.FieldError{Field: "id", Error: ErrStudentExists.Error()})
	} else if err != ErrStudentNotFound {
		return Student{}, err
	}

	student, err := svc.repo.CreateStudent(ctx, Student{
		ID:        ns.ID,
		Name:      ns.Name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Student{}, errors.Wrap(err, "creating student")
	}
	svc.logger.Info("student added", map[string]interface{}{"student_id": student.ID})
	return student, nil
}

func (svc *Service) AddTeacher(ctx context.Context, nt NewTeacher) (Teacher, error) {
	if err := nt.Validate(); err != nil {
		return Teacher{}, err
	}
	if _, err := svc.repo.GetTeacher(ctx, nt.ID); err == nil {
		return Teacher{}, core.NewValidationError(ErrTeacherExists, core.FieldError{Field: "id", Error: ErrTeacherExists.Error()})
	} else if err != ErrTeacherNotFound {
		return Teacher{}, err
	}

	teacher, err := svc.repo.CreateTeacher(ctx, Teacher{
		ID:        nt.ID,
		Name:      nt.Name,
		Course:    nt.Course,
		AllYears:  IsAllYearsCourse(nt.Course),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Teacher{}, errors.Wrap(err, "creating teacher")
	}
	svc.logger.Info("teacher added", map[string]interface{}{"teacher_id": teacher.ID, "all_years": teacher.AllYears})
	return teacher, nil
}

// AddEvaluation records an evaluation for an existing student.
// The per-student maximum is not enforced here; the calculator rejects oversized sets.
func (svc *Service) AddEvaluation(ctx context.Context, ne NewEvaluation) (Student, error) {
	if err := ne.Validate(); err != nil {
		return Student{}, err
	}
	if _, err := svc.repo.GetStudent(ctx, ne.StudentID); err != nil {
		return Student{}, err
	}
	if ne.EvaluationID == "" {
		ne.EvaluationID = uuid.NewString()
	}

	eval, err := grading.NewEvaluation(ne.StudentID, ne.EvaluationID, *ne.Grade, ne.weight())
	if err != nil {
		return Student{}, err
	}
	student, err := svc.repo.AddEvaluation(ctx, eval)
	if err != nil {
		return Student{}, errors.Wrap(err, "adding evaluation")
	}
	svc.logger.Debug("evaluation added", map[string]interface{}{
		"student_id":    eval.StudentID(),
		"evaluation_id": eval.EvaluationID(),
	})
	return student, nil
}

func (svc *Service) GetStudent(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudent(ctx, core.CleanString(id))
}

func (svc *Service) GetTeacher(ctx context.Context, id string) (Teacher, error) {
	return svc.repo.GetTeacher(ctx, core.CleanString(id))
}

func (svc *Service) Students(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) Teachers(ctx context.Context) ([]Teacher, error) {
	return svc.repo.QueryAllTeachers(ctx)
}

// AllYearsTeachers lists the teachers whose course spans all academic years.
func (svc *Service) AllYearsTeachers(ctx context.Context) ([]Teacher, error) {
	teachers, err := svc.repo.QueryAllTeachers(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if t.AllYears {
			res = append(res, t)
		}
	}
	return res, nil
}

func (svc *Service) gradedStudent(ctx context.Context, studentID string) (Student, error) {
	student, err := svc.GetStudent(ctx, studentID)
	if err != nil {
		return Student{}, err
	}
	if student.EvaluationCount() == 0 {
		return Student{}, ErrNoEvaluations
	}
	return student, nil
}

// FinalGrade computes the final grade of a registered student.
func (svc *Service) FinalGrade(ctx context.Context, studentID string, opts grading.GradeOptions) (float64, grading.Breakdown, error) {
	student, err := svc.gradedStudent(ctx, studentID)
	if err != nil {
		return 0, grading.Breakdown{}, err
	}
	final, breakdown, err := svc.calc.FinalGradeWithOptions(student.CopyEvaluations(), opts)
	if err != nil {
		svc.logger.Warn("final grade rejected", err, map[string]interface{}{"student_id": student.ID})
		return 0, grading.Breakdown{}, err
	}
	return final, breakdown, nil
}

// GradeReport renders the grade report of a registered student.
// Calculation errors are part of the report; only lookup errors are returned.
func (svc *Service) GradeReport(ctx context.Context, studentID string, opts grading.GradeOptions) (string, error) {
	student, err := svc.gradedStudent(ctx, studentID)
	if err != nil {
		return "", err
	}
	return svc.calc.GradeReportWithOptions(student.ID, student.Name, student.CopyEvaluations(), opts), nil
}
