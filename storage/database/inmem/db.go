package inmemdb

import (
	"sync"

	"github.com/trezcool/gradecalc/core/school"
)

type (
	DB struct {
		student *studentTable
		teacher *teacherTable
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*school.Student
		order []string // registration order of table keys
	}

	teacherTable struct {
		sync.RWMutex
		table map[string]*school.Teacher
		order []string
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{table: make(map[string]*school.Student)},
		teacher: &teacherTable{table: make(map[string]*school.Teacher)},
	}
	return db, nil
}
