package school

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/grading"
)

func newEval(t *testing.T, studentID, evalID string, grade float64) grading.Evaluation {
	e, err := grading.NewEvaluation(studentID, evalID, grade)
	if err != nil {
		t.Fatalf("newEval() failed: %v", err)
	}
	return e
}

func TestStudent_AddEvaluation(t *testing.T) {
	s := Student{ID: "S001", Name: "John Doe"}
	assert.Equal(t, 0, s.EvaluationCount())

	for _, id := range []string{"E001", "E002", "E003"} {
		require.NoError(t, s.AddEvaluation(newEval(t, "S001", id, 15)))
	}
	assert.Equal(t, 3, s.EvaluationCount())

	err := s.AddEvaluation(newEval(t, "S002", "E004", 15))
	assert.True(t, errors.Is(err, ErrStudentMismatch))
	assert.EqualError(t, err, "evaluation student_id S002 does not match student S001: evaluation belongs to another student")
	assert.Equal(t, 3, s.EvaluationCount())
}

func TestStudent_CopyEvaluations(t *testing.T) {
	s := Student{ID: "S001", Name: "John Doe"}
	require.NoError(t, s.AddEvaluation(newEval(t, "S001", "E001", 15)))

	evals := s.CopyEvaluations()
	evals = append(evals, newEval(t, "S001", "E999", 10))
	evals[0] = newEval(t, "S001", "E000", 1)

	assert.Len(t, evals, 2)
	assert.Equal(t, 1, s.EvaluationCount())
	assert.Equal(t, "E001", s.Evaluations[0].EvaluationID())
}

func TestIsAllYearsCourse(t *testing.T) {
	tests := []struct {
		course string
		want   bool
	}{
		{course: "Software Engineering All Years", want: true},
		{course: "math all years", want: true},
		{course: "ALL YEARS Physics", want: true},
		{course: "AlL yEaRs", want: true},
		{course: "Software Engineering", want: false},
		{course: "All Year", want: false},
		{course: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.course, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllYearsCourse(tt.course))
		})
	}
}

func TestNewStudent_Validate(t *testing.T) {
	tests := []struct {
		name       string
		ns         NewStudent
		wantFields map[string]string
	}{
		{name: "valid", ns: NewStudent{ID: " S001 ", Name: " John Doe "}},
		{
			name:       "missing fields",
			ns:         NewStudent{},
			wantFields: map[string]string{"id": "this field is required", "name": "this field is required"},
		},
		{
			name:       "invalid id",
			ns:         NewStudent{ID: "S 001!", Name: "John"},
			wantFields: map[string]string{"id": codeText},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ns.Validate()
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "S001", tt.ns.ID)
				assert.Equal(t, "John Doe", tt.ns.Name)
				return
			}
			var vErrs validator.ValidationErrors
			require.True(t, errors.As(err, &vErrs), "want validator.ValidationErrors, got %T", err)
			assert.Equal(t, tt.wantFields, core.TranslateErrors(vErrs))
		})
	}
}

func TestNewEvaluation_Validate(t *testing.T) {
	grade := 12.0

	ne := NewEvaluation{StudentID: "S001", Grade: &grade}
	require.NoError(t, ne.Validate())
	assert.Equal(t, grading.DefaultWeightPercentage, ne.weight())

	ne = NewEvaluation{StudentID: "S001"}
	var vErrs validator.ValidationErrors
	require.True(t, errors.As(ne.Validate(), &vErrs))
	assert.Equal(t, map[string]string{"grade": "this field is required"}, core.TranslateErrors(vErrs))
}
