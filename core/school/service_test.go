package school_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/grading"
	"github.com/trezcool/gradecalc/core/school"
	"github.com/trezcool/gradecalc/services/logger"
	"github.com/trezcool/gradecalc/storage/database/inmem"
	"github.com/trezcool/gradecalc/tests"
)

func TestService_AddStudent(t *testing.T) {
	svc := testutil.NewService(t)
	ctx := context.Background()

	s, err := svc.AddStudent(ctx, school.NewStudent{ID: "S001", Name: "John Doe"})
	require.NoError(t, err)
	assert.Equal(t, "S001", s.ID)
	assert.Equal(t, "John Doe", s.Name)
	assert.Equal(t, 0, s.EvaluationCount())
	assert.False(t, s.CreatedAt.IsZero())

	_, err = svc.AddStudent(ctx, school.NewStudent{ID: "S001", Name: "Jane Doe"})
	var vErr *core.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.True(t, errors.Is(err, school.ErrStudentExists))
	assert.Equal(t, []core.FieldError{{Field: "id", Error: school.ErrStudentExists.Error()}}, vErr.Fields)

	_, err = svc.AddStudent(ctx, school.NewStudent{ID: "", Name: "No ID"})
	assert.Error(t, err)

	students, err := svc.Students(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "John Doe", students[0].Name)
}

func TestService_AddTeacher(t *testing.T) {
	svc := testutil.NewService(t)
	ctx := context.Background()

	testutil.CreateTeacher(t, svc, "T001", "Dr. Smith", "Math")
	testutil.CreateTeacher(t, svc, "T002", "Dr. Jones", "Physics all years")
	testutil.CreateTeacher(t, svc, "T003", "Dr. Brown", "Chemistry ALL YEARS")

	teachers, err := svc.Teachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 3)
	assert.Equal(t, []string{"T001", "T002", "T003"}, []string{teachers[0].ID, teachers[1].ID, teachers[2].ID})
	assert.False(t, teachers[0].AllYears)

	allYears, err := svc.AllYearsTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, allYears, 2)
	assert.Equal(t, "T002", allYears[0].ID)
	assert.Equal(t, "T003", allYears[1].ID)

	teacher, err := svc.GetTeacher(ctx, "T002")
	require.NoError(t, err)
	assert.Equal(t, "Physics all years", teacher.Course)

	_, err = svc.GetTeacher(ctx, "T999")
	assert.Equal(t, school.ErrTeacherNotFound, err)

	_, err = svc.AddTeacher(ctx, school.NewTeacher{ID: "T001", Name: "Dup", Course: "Art"})
	assert.True(t, errors.Is(err, school.ErrTeacherExists))
}

func TestService_AddEvaluation(t *testing.T) {
	svc := testutil.NewService(t)
	ctx := context.Background()
	testutil.CreateStudent(t, svc, "S001", "John Doe")

	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name       string
		ne         school.NewEvaluation
		wantErr    error
		wantDomain bool
		wantCount  int
	}{
		{name: "success", ne: school.NewEvaluation{StudentID: "S001", EvaluationID: "E001", Grade: ptr(15), Weight: ptr(50)}, wantCount: 1},
		{name: "default weight", ne: school.NewEvaluation{StudentID: "S001", EvaluationID: "E002", Grade: ptr(18)}, wantCount: 2},
		{name: "generated id", ne: school.NewEvaluation{StudentID: "S001", Grade: ptr(10), Weight: ptr(10)}, wantCount: 3},
		{name: "unknown student", ne: school.NewEvaluation{StudentID: "S999", Grade: ptr(15)}, wantErr: school.ErrStudentNotFound},
		{name: "grade too high", ne: school.NewEvaluation{StudentID: "S001", Grade: ptr(25)}, wantDomain: true},
		{name: "negative grade", ne: school.NewEvaluation{StudentID: "S001", Grade: ptr(-5)}, wantDomain: true},
		{name: "invalid weight", ne: school.NewEvaluation{StudentID: "S001", Grade: ptr(15), Weight: ptr(150)}, wantDomain: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := svc.AddEvaluation(ctx, tt.ne)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantDomain:
				assert.True(t, core.IsDomainError(err), "want domain error, got %v", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantCount, s.EvaluationCount())
			}
		})
	}

	s, err := svc.GetStudent(ctx, "S001")
	require.NoError(t, err)
	require.Equal(t, 3, s.EvaluationCount())
	assert.Equal(t, grading.DefaultWeightPercentage, s.Evaluations[1].WeightPercentage())
	assert.Len(t, s.Evaluations[2].EvaluationID(), 36) // uuid
}

func TestService_AddEvaluation_beyondMaximum(t *testing.T) {
	svc := testutil.NewService(t)
	ctx := context.Background()

	evals := make([]testutil.Eval, grading.MaxEvaluationsPerStudent+1)
	for i := range evals {
		evals[i] = testutil.Eval{Grade: 15, Weight: 10}
	}
	// the registry accepts it; the calculator does not
	s := testutil.CreateStudent(t, svc, "S001", "John Doe", evals...)
	assert.Equal(t, 11, s.EvaluationCount())

	_, _, err := svc.FinalGrade(ctx, "S001", grading.DefaultGradeOptions())
	assert.EqualError(t, err, "Maximum 10 evaluations allowed per student")
}

func TestService_FinalGrade(t *testing.T) {
	svc := testutil.NewService(t)
	ctx := context.Background()

	testutil.CreateStudent(t, svc, "S001", "John Doe", testutil.Eval{Grade: 16, Weight: 40}, testutil.Eval{Grade: 18, Weight: 30}, testutil.Eval{Grade: 14, Weight: 30})
	testutil.CreateStudent(t, svc, "S002", "Jane Doe", testutil.Eval{Grade: 17, Weight: 100})
	testutil.CreateStudent(t, svc, "S003", "No Evals")

	tests := []struct {
		name      string
		studentID string
		opts      grading.GradeOptions
		want      float64
		wantErr   error
	}{
		{name: "end to end", studentID: "S001", opts: grading.GradeOptions{Attendance: 95, ExtraPoints: 1, ReachedMinimum: true}, want: 16.9},
		{name: "defaults", studentID: "S002", opts: grading.DefaultGradeOptions(), want: 17},
		{name: "with penalty", studentID: "S002", opts: grading.GradeOptions{Attendance: 50, ReachedMinimum: true}, want: 16},
		{name: "with extra points", studentID: "S002", opts: grading.GradeOptions{Attendance: 100, ExtraPoints: 2, ReachedMinimum: true}, want: 19},
		{name: "without minimum attendance", studentID: "S002", opts: grading.GradeOptions{Attendance: 70, ExtraPoints: 2}, want: 16.4},
		{name: "unknown student", studentID: "S999", opts: grading.DefaultGradeOptions(), wantErr: school.ErrStudentNotFound},
		{name: "no evaluations", studentID: "S003", opts: grading.DefaultGradeOptions(), wantErr: school.ErrNoEvaluations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, breakdown, err := svc.FinalGrade(ctx, tt.studentID, tt.opts)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, breakdown.FinalGrade)
		})
	}
}

func TestService_GradeReport(t *testing.T) {
	svc := testutil.NewService(t)
	ctx := context.Background()

	testutil.CreateStudent(t, svc, "S001", "John Doe", testutil.Eval{Grade: 15, Weight: 50}, testutil.Eval{Grade: 17, Weight: 50})
	testutil.CreateStudent(t, svc, "S002", "No Evals")

	report, err := svc.GradeReport(ctx, "S001", grading.DefaultGradeOptions())
	require.NoError(t, err)
	assert.Contains(t, report, "Student Name: John Doe")
	assert.Contains(t, report, "Total Evaluations: 2")
	assert.Contains(t, report, "FINAL GRADE: 16.0/20")

	_, err = svc.GradeReport(ctx, "S999", grading.DefaultGradeOptions())
	assert.Equal(t, school.ErrStudentNotFound, err)

	_, err = svc.GradeReport(ctx, "S002", grading.DefaultGradeOptions())
	assert.Equal(t, school.ErrNoEvaluations, err)
}

func TestService_policies(t *testing.T) {
	svc := testutil.NewService(t)
	assert.Equal(t, 80.0, svc.MinimumAttendance())
	assert.True(t, svc.ReachedMinimum(80))
	assert.False(t, svc.ReachedMinimum(79.5))

	conf := &core.Config{Grading: core.GradingConfig{MinimumAttendance: 70, ExtraPointValue: 0.5}}
	calc, err := school.NewCalculatorFromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, 70.0, calc.AttendancePolicy().Minimum())
	assert.Equal(t, 0.5, calc.ExtraPointsPolicy().Value())

	db, err := inmemdb.Open()
	require.NoError(t, err)
	custom := school.NewService(inmemdb.NewRepository(db), calc, logsvc.NewDiscardLogger())
	assert.True(t, custom.ReachedMinimum(75))
	assert.Same(t, calc, custom.Calculator())

	_, err = school.NewCalculatorFromConfig(&core.Config{Grading: core.GradingConfig{MinimumAttendance: 120, ExtraPointValue: 1}})
	assert.True(t, core.IsDomainError(err))
	_, err = school.NewCalculatorFromConfig(&core.Config{Grading: core.GradingConfig{MinimumAttendance: 80, ExtraPointValue: -1}})
	assert.True(t, core.IsDomainError(err))
}

func TestSeedSampleData(t *testing.T) {
	svc := testutil.NewService(t)
	ctx := context.Background()
	require.NoError(t, school.SeedSampleData(ctx, svc))

	students, err := svc.Students(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	for _, s := range students {
		assert.Equal(t, 3, s.EvaluationCount(), s.ID)
	}

	allYears, err := svc.AllYearsTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, allYears, 1)
	assert.Equal(t, "T001", allYears[0].ID)

	// S001: 15.5×0.3 + 17×0.4 + 16×0.3 = 16.25
	got, _, err := svc.FinalGrade(ctx, "S001", grading.DefaultGradeOptions())
	require.NoError(t, err)
	assert.Equal(t, 16.25, got)

	// seeding twice collides on ids
	assert.Error(t, school.SeedSampleData(ctx, svc))
}
