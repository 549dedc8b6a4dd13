package inmemdb

import (
	"context"

	"github.com/trezcool/gradecalc/core/grading"
	"github.com/trezcool/gradecalc/core/school"
)

type studentRepository struct {
	db *studentTable
}

// repositories share one DB; registryRepository serves both collections.
type registryRepository struct {
	studentRepository
	teacherRepository
}

var _ school.Repository = (*registryRepository)(nil) // interface compliance check

func NewRepository(db *DB) school.Repository {
	return &registryRepository{
		studentRepository: studentRepository{db: db.student},
		teacherRepository: teacherRepository{db: db.teacher},
	}
}

// copyStudent detaches the stored student from the returned value.
func copyStudent(s *school.Student) school.Student {
	res := *s
	res.Evaluations = s.CopyEvaluations()
	return res
}

func (repo *studentRepository) CreateStudent(_ context.Context, student school.Student) (school.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[student.ID]; ok {
		return school.Student{}, school.ErrStudentExists
	}
	stored := copyStudent(&student)
	repo.db.table[student.ID] = &stored
	repo.db.order = append(repo.db.order, student.ID)
	return copyStudent(&stored), nil
}

func (repo *studentRepository) GetStudent(_ context.Context, id string) (school.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return copyStudent(s), nil
	}
	return school.Student{}, school.ErrStudentNotFound
}

func (repo *studentRepository) QueryAllStudents(_ context.Context) ([]school.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]school.Student, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		students = append(students, copyStudent(repo.db.table[id]))
	}
	return students, nil
}

func (repo *studentRepository) AddEvaluation(_ context.Context, eval grading.Evaluation) (school.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s, ok := repo.db.table[eval.StudentID()]
	if !ok {
		return school.Student{}, school.ErrStudentNotFound
	}
	if err := s.AddEvaluation(eval); err != nil {
		return school.Student{}, err
	}
	return copyStudent(s), nil
}
