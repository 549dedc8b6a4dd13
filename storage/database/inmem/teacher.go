package inmemdb

import (
	"context"

	"github.com/trezcool/gradecalc/core/school"
)

type teacherRepository struct {
	db *teacherTable
}

func (repo *teacherRepository) CreateTeacher(_ context.Context, teacher school.Teacher) (school.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[teacher.ID]; ok {
		return school.Teacher{}, school.ErrTeacherExists
	}
	repo.db.table[teacher.ID] = &teacher
	repo.db.order = append(repo.db.order, teacher.ID)
	return teacher, nil
}

func (repo *teacherRepository) GetTeacher(_ context.Context, id string) (school.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return school.Teacher{}, school.ErrTeacherNotFound
}

func (repo *teacherRepository) QueryAllTeachers(_ context.Context) ([]school.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	teachers := make([]school.Teacher, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		teachers = append(teachers, *repo.db.table[id])
	}
	return teachers, nil
}
