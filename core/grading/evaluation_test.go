package grading

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradecalc/core"
)

func TestNewEvaluation(t *testing.T) {
	tests := []struct {
		name    string
		grade   float64
		weight  []float64
		wantErr bool
	}{
		{name: "valid", grade: 15.5, weight: []float64{50}},
		{name: "minimum grade", grade: 0, weight: []float64{100}},
		{name: "maximum grade", grade: 20, weight: []float64{100}},
		{name: "default weight", grade: 15},
		{name: "minimum valid weight", grade: 15, weight: []float64{0.1}},
		{name: "grade too low", grade: -0.1, weight: []float64{100}, wantErr: true},
		{name: "grade too high", grade: 20.1, weight: []float64{100}, wantErr: true},
		{name: "zero weight", grade: 15, weight: []float64{0}, wantErr: true},
		{name: "negative weight", grade: 15, weight: []float64{-10}, wantErr: true},
		{name: "weight over 100", grade: 15, weight: []float64{101}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEvaluation("S001", "E001", tt.grade, tt.weight...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, core.ErrDomain))
				assert.True(t, core.IsDomainError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "S001", e.StudentID())
			assert.Equal(t, "E001", e.EvaluationID())
			assert.Equal(t, tt.grade, e.Grade())
			if len(tt.weight) > 0 {
				assert.Equal(t, tt.weight[0], e.WeightPercentage())
			} else {
				assert.Equal(t, DefaultWeightPercentage, e.WeightPercentage())
			}
		})
	}
}

func TestNewEvaluation_messages(t *testing.T) {
	_, err := NewEvaluation("S001", "E001", 21)
	assert.EqualError(t, err, "Grade must be between 0.0 and 20.0")

	_, err = NewEvaluation("S001", "E001", 10, 0)
	assert.EqualError(t, err, "Weight percentage must be between 0 and 100")
}

func TestEvaluation_WeightedGrade(t *testing.T) {
	tests := []struct {
		name   string
		grade  float64
		weight float64
		want   float64
	}{
		{name: "half weight", grade: 20, weight: 50, want: 10},
		{name: "full weight", grade: 15, weight: 100, want: 15},
		{name: "minimum weight", grade: 15, weight: 0.1, want: 0.015},
		{name: "zero grade", grade: 0, weight: 30, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEvaluation("S001", "E001", tt.grade, tt.weight)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, e.WeightedGrade(), 1e-9)
			assert.InDelta(t, tt.grade*tt.weight/100, e.WeightedGrade(), 1e-9)
		})
	}
}

func TestEvaluation_String(t *testing.T) {
	e, err := NewEvaluation("S001", "E001", 15.5, 30)
	require.NoError(t, err)
	assert.Equal(t, "Evaluation(student_id=S001, evaluation_id=E001, grade=15.5, weight=30%)", e.String())
}
