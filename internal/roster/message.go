package roster

import (
	"errors"

	"github.com/leapstack-labs/rollbook/internal/state"
)

// Action identifies one of the form's controls.
type Action int

// Form actions.
const (
	ActionAdd Action = iota
	ActionUpdate
	ActionDelete
	ActionViewAll
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionViewAll:
		return "view all"
	default:
		return "unknown"
	}
}

// Severity of a user-facing message.
type Severity int

// Message severities.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Message is the modal text shown after an action.
type Message struct {
	Severity Severity
	Title    string
	Text     string
}

// Success returns the message shown when action completed.
func Success(action Action) Message {
	switch action {
	case ActionAdd:
		return Message{SeverityInfo, "Success", "Student added successfully!"}
	case ActionUpdate:
		return Message{SeverityInfo, "Success", "Student updated successfully!"}
	case ActionDelete:
		return Message{SeverityInfo, "Deleted", "Student deleted successfully!"}
	default:
		return Message{SeverityInfo, "Success", "Done."}
	}
}

// Describe converts an action error into the message the user sees.
func Describe(action Action, err error) Message {
	switch {
	case errors.Is(err, ErrRequiredField):
		return Message{SeverityWarning, "Validation Error", "All fields are required."}
	case errors.Is(err, ErrNoSelection):
		verb := "update"
		if action == ActionDelete {
			verb = "delete"
		}
		return Message{SeverityWarning, "Selection Error", "Please select a student to " + verb + "."}
	case errors.Is(err, state.ErrDuplicateRollNo):
		return Message{SeverityError, "Error", "Roll number must be unique."}
	case errors.Is(err, state.ErrStudentNotFound):
		return Message{SeverityError, "Error", "The selected student no longer exists."}
	default:
		return Message{SeverityError, "Error", "Could not " + action.String() + " student: " + err.Error()}
	}
}

// ConfirmDelete is the question asked before a delete.
const ConfirmDelete = "Are you sure you want to delete this student?"
