package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/rollbook/internal/state"
)

// Service runs the Add, Update, Delete and View All actions against a store.
type Service struct {
	store  state.StudentStore
	logger *slog.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(store state.StudentStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

// Add validates f and inserts it as a new student.
func (s *Service) Add(ctx context.Context, f Form) (*state.Student, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	st, err := s.store.CreateStudent(ctx, f.student(0))
	if err != nil {
		s.logger.Warn("add rejected", slog.String("roll_no", f.Trimmed().RollNo), slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("student added", slog.Int64("id", st.ID), slog.String("roll_no", st.RollNo))
	return st, nil
}

// Update overwrites the selected student with f. An id of zero means nothing
// is selected.
func (s *Service) Update(ctx context.Context, id int64, f Form) (*state.Student, error) {
	if id == 0 {
		return nil, ErrNoSelection
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	st := f.student(id)
	if err := s.store.UpdateStudent(ctx, st); err != nil {
		s.logger.Warn("update rejected", slog.Int64("id", id), slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("student updated", slog.Int64("id", id), slog.String("roll_no", st.RollNo))
	return &st, nil
}

// Delete removes the selected student. Confirmation is the caller's job.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrNoSelection
	}
	if err := s.store.DeleteStudent(ctx, id); err != nil {
		return err
	}
	s.logger.Info("student deleted", slog.Int64("id", id))
	return nil
}

// Get returns a single student.
func (s *Service) Get(ctx context.Context, id int64) (*state.Student, error) {
	return s.store.GetStudent(ctx, id)
}

// List re-reads every student, ordered by id.
func (s *Service) List(ctx context.Context) ([]state.Student, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	return students, nil
}
