package testutil

import (
	"context"
	"testing"

	"github.com/trezcool/gradecalc/core/grading"
	"github.com/trezcool/gradecalc/core/school"
	"github.com/trezcool/gradecalc/services/logger"
	"github.com/trezcool/gradecalc/storage/database/inmem"
)

// NewService returns a school.Service backed by a fresh in-memory DB and the default policies.
func NewService(t *testing.T) *school.Service {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	return school.NewService(inmemdb.NewRepository(db), grading.NewCalculator(nil, nil), logsvc.NewDiscardLogger())
}

// Eval is a (grade, weight) pair used to seed evaluations.
type Eval struct {
	Grade  float64
	Weight float64
}

func CreateStudent(t *testing.T, svc *school.Service, id, name string, evals ...Eval) school.Student {
	t.Helper()
	ctx := context.Background()
	student, err := svc.AddStudent(ctx, school.NewStudent{ID: id, Name: name})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	for _, e := range evals {
		grade, weight := e.Grade, e.Weight
		student, err = svc.AddEvaluation(ctx, school.NewEvaluation{StudentID: id, Grade: &grade, Weight: &weight})
		if err != nil {
			t.Fatalf("CreateStudent() failed: %v", err)
		}
	}
	return student
}

func CreateTeacher(t *testing.T, svc *school.Service, id, name, course string) school.Teacher {
	t.Helper()
	teacher, err := svc.AddTeacher(context.Background(), school.NewTeacher{ID: id, Name: name, Course: course})
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return teacher
}
