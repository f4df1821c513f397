package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// CreateStudent inserts a new student row.
func (s *SQLiteStore) CreateStudent(ctx context.Context, st Student) (*Student, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO students (name, roll_no, course) VALUES (?, ?, ?)`,
		st.Name, st.RollNo, st.Course,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", mapConstraintError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read student id: %w", err)
	}

	st.ID = id
	s.logger.Debug("created student", slog.Int64("id", id), slog.String("roll_no", st.RollNo))
	return &st, nil
}

// GetStudent retrieves a student by id.
func (s *SQLiteStore) GetStudent(ctx context.Context, id int64) (*Student, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	st := &Student{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, roll_no, course FROM students WHERE id = ?`, id,
	).Scan(&st.ID, &st.Name, &st.RollNo, &st.Course)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrStudentNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return st, nil
}

// UpdateStudent overwrites every field of the row identified by st.ID.
func (s *SQLiteStore) UpdateStudent(ctx context.Context, st Student) error {
	if s.db == nil {
		return errNotOpened
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE students SET name = ?, roll_no = ?, course = ? WHERE id = ?`,
		st.Name, st.RollNo, st.Course, st.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", mapConstraintError(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrStudentNotFound, st.ID)
	}

	s.logger.Debug("updated student", slog.Int64("id", st.ID))
	return nil
}

// DeleteStudent removes the row with the given id.
func (s *SQLiteStore) DeleteStudent(ctx context.Context, id int64) error {
	if s.db == nil {
		return errNotOpened
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrStudentNotFound, id)
	}

	s.logger.Debug("deleted student", slog.Int64("id", id))
	return nil
}

// ListStudents returns all students ordered by id.
func (s *SQLiteStore) ListStudents(ctx context.Context) ([]Student, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, roll_no, course FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var students []Student
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.Name, &st.RollNo, &st.Course); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return students, nil
}

// CountStudents returns the number of stored students.
func (s *SQLiteStore) CountStudents(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, errNotOpened
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return n, nil
}

// codedError is satisfied by *sqlite.Error.
type codedError interface {
	error
	Code() int
}

var _ codedError = (*sqlite.Error)(nil)

// mapConstraintError turns a unique violation on roll_no into ErrDuplicateRollNo.
func mapConstraintError(err error) error {
	var ce codedError
	if errors.As(err, &ce) && ce.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return ErrDuplicateRollNo
	}
	return err
}

var _ StudentStore = (*SQLiteStore)(nil)
