package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var fieldLabels = [focusTable]string{"Name", "Roll No", "Course"}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.title))
	b.WriteString("\n")

	b.WriteString(m.formView())
	b.WriteString("\n")

	switch {
	case m.pending:
		b.WriteString(m.styles.status.Render("Working..."))
	case m.selected != 0:
		b.WriteString(m.styles.status.Render(fmt.Sprintf("Selected student #%d", m.selected)))
	default:
		b.WriteString(m.styles.status.Render("No student selected"))
	}
	b.WriteString("\n")

	if m.dialog != nil {
		b.WriteString(m.dialogView())
		b.WriteString("\n")
	}

	box := m.styles.box
	if m.focus == focusTable {
		box = m.styles.focusedBox
	}
	b.WriteString(box.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(fmt.Sprintf("%d students", len(m.students))))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) formView() string {
	rows := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		label := m.styles.label
		if m.focus == i {
			label = m.styles.focusedLabel
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, label.Render(fieldLabels[i]), in.View())
	}

	box := m.styles.box
	if m.focus < focusTable {
		box = m.styles.focusedBox
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) dialogView() string {
	d := m.dialog
	color := severityColor(d.msg.Severity)

	hint := "enter: ok"
	if d.kind == dialogConfirmDelete {
		hint = "y/enter: yes • n/esc: no"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.dialogTitle.Foreground(color).Render(d.msg.Title),
		"",
		d.msg.Text,
		"",
		m.styles.hint.Render(hint),
	)
	return m.styles.dialog.BorderForeground(color).Render(body)
}
