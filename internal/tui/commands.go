package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/rollbook/internal/roster"
	"github.com/leapstack-labs/rollbook/internal/state"
)

type studentsLoadedMsg struct {
	students []state.Student
	err      error
}

type actionDoneMsg struct {
	action  roster.Action
	student *state.Student
	err     error
}

func (m Model) loadStudents() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		students, err := svc.List(ctx)
		return studentsLoadedMsg{students: students, err: err}
	}
}

func runAction(ctx context.Context, svc *roster.Service, action roster.Action, id int64, form roster.Form) tea.Cmd {
	return func() tea.Msg {
		msg := actionDoneMsg{action: action}
		switch action {
		case roster.ActionAdd:
			msg.student, msg.err = svc.Add(ctx, form)
		case roster.ActionUpdate:
			msg.student, msg.err = svc.Update(ctx, id, form)
		case roster.ActionDelete:
			msg.err = svc.Delete(ctx, id)
		}
		return msg
	}
}

func studentRow(st state.Student) table.Row {
	return table.Row{strconv.FormatInt(st.ID, 10), st.Name, st.RollNo, st.Course}
}
