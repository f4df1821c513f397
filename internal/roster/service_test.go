package roster

import (
	"context"
	"testing"

	"github.com/leapstack-labs/rollbook/internal/state"
	"github.com/leapstack-labs/rollbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := testutil.NewTestLogger(t)
	store, err := state.Open(state.MemoryPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store, logger)
}

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name        string
		form        Form
		wantMissing []Field
	}{
		{name: "all present", form: Form{"Ada", "R1", "Math"}},
		{name: "padded values are fine", form: Form{"  Ada ", "\tR1", "Math\n"}},
		{name: "empty name", form: Form{"", "R1", "Math"}, wantMissing: []Field{FieldName}},
		{name: "whitespace roll number", form: Form{"Ada", "   ", "Math"}, wantMissing: []Field{FieldRollNo}},
		{name: "everything blank", form: Form{" ", "", "\t"}, wantMissing: []Field{FieldName, FieldRollNo, FieldCourse}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantMissing == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRequiredField)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMissing, verr.Missing)
		})
	}
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	st, err := svc.Add(ctx, Form{Name: "  Ada Lovelace ", RollNo: " CS-001", Course: "Computing  "})
	require.NoError(t, err)
	assert.NotZero(t, st.ID)
	assert.Equal(t, "Ada Lovelace", st.Name, "fields are stored trimmed")
	assert.Equal(t, "CS-001", st.RollNo)
	assert.Equal(t, "Computing", st.Course)

	students, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []state.Student{*st}, students)
}

func TestService_AddRejections(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Add(ctx, Form{Name: "Ada", RollNo: "CS-001", Course: "Computing"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		form   Form
		wantIs error
	}{
		{name: "duplicate roll number", form: Form{"Grace", "CS-001", "Navy"}, wantIs: state.ErrDuplicateRollNo},
		{name: "duplicate after trimming", form: Form{"Grace", " CS-001 ", "Navy"}, wantIs: state.ErrDuplicateRollNo},
		{name: "empty course", form: Form{"Grace", "CS-002", "  "}, wantIs: ErrRequiredField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.form)
			assert.ErrorIs(t, err, tt.wantIs)

			students, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Len(t, students, 1, "rejected add must not change the table")
		})
	}
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	ada, err := svc.Add(ctx, Form{"Ada", "CS-001", "Computing"})
	require.NoError(t, err)
	grace, err := svc.Add(ctx, Form{"Grace", "CS-002", "Navy"})
	require.NoError(t, err)

	t.Run("course change keeping roll number", func(t *testing.T) {
		updated, err := svc.Update(ctx, ada.ID, Form{"Ada", "CS-001", "Mathematics"})
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", updated.Course)

		got, err := svc.Get(ctx, ada.ID)
		require.NoError(t, err)
		assert.Equal(t, *updated, *got)
	})

	t.Run("no selection", func(t *testing.T) {
		_, err := svc.Update(ctx, 0, Form{"Ada", "CS-001", "Math"})
		assert.ErrorIs(t, err, ErrNoSelection)
	})

	t.Run("validation before storage", func(t *testing.T) {
		_, err := svc.Update(ctx, ada.ID, Form{"", "CS-001", "Math"})
		assert.ErrorIs(t, err, ErrRequiredField)
	})

	t.Run("roll number taken", func(t *testing.T) {
		_, err := svc.Update(ctx, grace.ID, Form{"Grace", "CS-001", "Navy"})
		assert.ErrorIs(t, err, state.ErrDuplicateRollNo)

		got, err := svc.Get(ctx, grace.ID)
		require.NoError(t, err)
		assert.Equal(t, "CS-002", got.RollNo)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	var ids []int64
	for _, f := range []Form{{"A", "1", "x"}, {"B", "2", "y"}, {"C", "3", "z"}} {
		st, err := svc.Add(ctx, f)
		require.NoError(t, err)
		ids = append(ids, st.ID)
	}

	assert.ErrorIs(t, svc.Delete(ctx, 0), ErrNoSelection)

	require.NoError(t, svc.Delete(ctx, ids[1]))
	students, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, ids[0], students[0].ID)
	assert.Equal(t, ids[2], students[1].ID)

	assert.ErrorIs(t, svc.Delete(ctx, ids[1]), state.ErrStudentNotFound)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		err      error
		severity Severity
		text     string
	}{
		{"validation", ActionAdd, &ValidationError{Missing: []Field{FieldName}}, SeverityWarning, "All fields are required."},
		{"update without selection", ActionUpdate, ErrNoSelection, SeverityWarning, "Please select a student to update."},
		{"delete without selection", ActionDelete, ErrNoSelection, SeverityWarning, "Please select a student to delete."},
		{"duplicate", ActionUpdate, state.ErrDuplicateRollNo, SeverityError, "Roll number must be unique."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Describe(tt.action, tt.err)
			assert.Equal(t, tt.severity, msg.Severity)
			assert.Equal(t, tt.text, msg.Text)
		})
	}
}
