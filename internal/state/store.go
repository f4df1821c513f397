// Package state provides the SQLite-backed student record store.
// It owns the single database handle and the students table.
package state

import (
	"context"
	"errors"
)

// Sentinel errors returned by the store.
var (
	// ErrDuplicateRollNo is returned when an insert or update would give two
	// students the same roll number.
	ErrDuplicateRollNo = errors.New("roll number must be unique")

	// ErrStudentNotFound is returned when no row has the requested id.
	ErrStudentNotFound = errors.New("student not found")

	errNotOpened = errors.New("database not opened")
)

// Student is a single row of the students table.
type Student struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	RollNo string `json:"roll_no" yaml:"roll_no"`
	Course string `json:"course" yaml:"course"`
}

// StudentStore is the persistence contract used by the roster service.
type StudentStore interface {
	// CreateStudent inserts s and returns it with its assigned ID.
	CreateStudent(ctx context.Context, s Student) (*Student, error)
	// GetStudent returns the row with the given id or ErrStudentNotFound.
	GetStudent(ctx context.Context, id int64) (*Student, error)
	// UpdateStudent overwrites name, roll number and course of row s.ID.
	UpdateStudent(ctx context.Context, s Student) error
	// DeleteStudent removes the row with the given id.
	DeleteStudent(ctx context.Context, id int64) error
	// ListStudents returns every row ordered by id.
	ListStudents(ctx context.Context) ([]Student, error)
	// CountStudents returns the number of rows.
	CountStudents(ctx context.Context) (int64, error)
}
