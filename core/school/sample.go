package school

import (
	"context"

	"github.com/pkg/errors"
)

type sampleEvaluation struct {
	studentID, evaluationID string
	grade, weight           float64
}

var (
	sampleTeachers = []NewTeacher{
		{ID: "T001", Name: "Dr. Juan Pérez", Course: "Software Engineering All Years"},
	}

	sampleStudents = []NewStudent{
		{ID: "S001", Name: "María García"},
		{ID: "S002", Name: "Carlos López"},
		{ID: "S003", Name: "Ana Martínez"},
	}

	sampleEvaluations = []sampleEvaluation{
		{"S001", "E001", 15.5, 30}, {"S001", "E002", 17.0, 40}, {"S001", "E003", 16.0, 30},
		{"S002", "E001", 18.0, 30}, {"S002", "E002", 19.0, 40}, {"S002", "E003", 17.5, 30},
		{"S003", "E001", 12.0, 30}, {"S003", "E002", 11.5, 40}, {"S003", "E003", 13.0, 30},
	}
)

// SeedSampleData registers a demo teacher, three students and their evaluations.
func SeedSampleData(ctx context.Context, svc *Service) error {
	for _, nt := range sampleTeachers {
		if _, err := svc.AddTeacher(ctx, nt); err != nil {
			return errors.Wrapf(err, "seeding teacher %s", nt.ID)
		}
	}
	for _, ns := range sampleStudents {
		if _, err := svc.AddStudent(ctx, ns); err != nil {
			return errors.Wrapf(err, "seeding student %s", ns.ID)
		}
	}
	for _, se := range sampleEvaluations {
		grade, weight := se.grade, se.weight
		ne := NewEvaluation{StudentID: se.studentID, EvaluationID: se.evaluationID, Grade: &grade, Weight: &weight}
		if _, err := svc.AddEvaluation(ctx, ne); err != nil {
			return errors.Wrapf(err, "seeding evaluation %s/%s", se.studentID, se.evaluationID)
		}
	}
	return nil
}
