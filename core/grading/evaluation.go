package grading

import (
	"encoding/json"
	"fmt"

	"github.com/trezcool/gradecalc/core"
)

// Grade scale
const (
	MinGrade = 0.0
	MaxGrade = 20.0

	DefaultWeightPercentage = 100.0
)

// Evaluation is one graded piece of work of a student and its share of the final grade.
// Values are validated by NewEvaluation and never change afterwards.
type Evaluation struct {
	studentID        string
	evaluationID     string
	grade            float64
	weightPercentage float64
}

// NewEvaluation validates grade ∈ [0, 20] and weight ∈ (0, 100].
// weight defaults to DefaultWeightPercentage.
func NewEvaluation(studentID, evaluationID string, grade float64, weight ...float64) (Evaluation, error) {
	weightPct := DefaultWeightPercentage
	if len(weight) > 0 {
		weightPct = weight[0]
	}

	if !(grade >= MinGrade && grade <= MaxGrade) {
		return Evaluation{}, core.NewDomainError("grading.NewEvaluation", "Grade must be between %.1f and %.1f", MinGrade, MaxGrade)
	}
	if !(weightPct > 0 && weightPct <= 100) {
		return Evaluation{}, core.NewDomainError("grading.NewEvaluation", "Weight percentage must be between 0 and 100")
	}

	return Evaluation{
		studentID:        studentID,
		evaluationID:     evaluationID,
		grade:            grade,
		weightPercentage: weightPct,
	}, nil
}

func (e Evaluation) StudentID() string         { return e.studentID }
func (e Evaluation) EvaluationID() string      { return e.evaluationID }
func (e Evaluation) Grade() float64            { return e.grade }
func (e Evaluation) WeightPercentage() float64 { return e.weightPercentage }

// WeightedGrade is the evaluation's contribution: grade × weight / 100.
func (e Evaluation) WeightedGrade() float64 {
	return e.grade * (e.weightPercentage / 100)
}

func (e Evaluation) String() string {
	return fmt.Sprintf("Evaluation(student_id=%s, evaluation_id=%s, grade=%v, weight=%v%%)",
		e.studentID, e.evaluationID, e.grade, e.weightPercentage)
}

func (e Evaluation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		StudentID        string  `json:"student_id"`
		EvaluationID     string  `json:"evaluation_id"`
		Grade            float64 `json:"grade"`
		WeightPercentage float64 `json:"weight_percentage"`
	}{e.studentID, e.evaluationID, e.grade, e.weightPercentage})
}
