// Package roster holds the controller logic between the record form and the
// student store: validation, the four actions and spreadsheet exchange.
package roster

import (
	"errors"
	"strings"

	"github.com/leapstack-labs/rollbook/internal/state"
)

// User-facing error kinds.
var (
	// ErrRequiredField is matched by every *ValidationError.
	ErrRequiredField = errors.New("all fields are required")

	// ErrNoSelection is returned by Update and Delete without a selected row.
	ErrNoSelection = errors.New("no student selected")
)

// Field names a form input.
type Field string

// Form fields in display order.
const (
	FieldName   Field = "name"
	FieldRollNo Field = "roll_no"
	FieldCourse Field = "course"
)

// Form is the content of the three editable inputs.
type Form struct {
	Name   string
	RollNo string
	Course string
}

// FormFromStudent copies a stored row into a form.
func FormFromStudent(s state.Student) Form {
	return Form{Name: s.Name, RollNo: s.RollNo, Course: s.Course}
}

// Trimmed returns the form with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:   strings.TrimSpace(f.Name),
		RollNo: strings.TrimSpace(f.RollNo),
		Course: strings.TrimSpace(f.Course),
	}
}

// Validate reports every field that is empty after trimming.
func (f Form) Validate() error {
	t := f.Trimmed()
	var missing []Field
	if t.Name == "" {
		missing = append(missing, FieldName)
	}
	if t.RollNo == "" {
		missing = append(missing, FieldRollNo)
	}
	if t.Course == "" {
		missing = append(missing, FieldCourse)
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func (f Form) student(id int64) state.Student {
	t := f.Trimmed()
	return state.Student{ID: id, Name: t.Name, RollNo: t.RollNo, Course: t.Course}
}

// ValidationError lists the empty fields of a rejected form.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return ErrRequiredField.Error() + " (missing: " + strings.Join(names, ", ") + ")"
}

// Is makes errors.Is(err, ErrRequiredField) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrRequiredField
}
