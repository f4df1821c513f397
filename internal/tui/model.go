// Package tui is the interactive student form: three text inputs, a table of
// every stored student and the Add, Update, Delete and View All actions.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/rollbook/internal/roster"
	"github.com/leapstack-labs/rollbook/internal/state"
)

// Default option values.
const (
	DefaultTitle       = "Student Record Management System"
	DefaultTableHeight = 10
	DefaultAccentColor = "63"
)

// Options configures the form.
type Options struct {
	Title       string
	TableHeight int
	AccentColor string
	Logger      *slog.Logger
	// Context is passed to every store call. Defaults to context.Background.
	Context context.Context
	// StaticCursor disables cursor blinking.
	StaticCursor bool
}

// Focus order: the three inputs, then the table.
const (
	focusName = iota
	focusRollNo
	focusCourse
	focusTable
	focusCount
)

const noSelection int64 = 0

type dialogKind int

const (
	dialogMessage dialogKind = iota
	dialogConfirmDelete
)

type dialog struct {
	kind dialogKind
	msg  roster.Message
}

// Model is the bubbletea model of the form.
type Model struct {
	svc    *roster.Service
	ctx    context.Context
	logger *slog.Logger
	title  string

	keys       keyMap
	dialogKeys dialogKeys
	help       help.Model
	styles     styles

	inputs [focusTable]textinput.Model
	table  table.Model
	focus  int

	students []state.Student
	// selected is the id of the row Update and Delete act on.
	selected int64
	// stored is the selected row as read; shown is what the inputs made of
	// it. An input still showing its shown value yields the stored one.
	stored [focusTable]string
	shown  [focusTable]string

	dialog       *dialog
	pending      bool
	width        int
	staticCursor bool
}

// New builds the form. Call Init (or run it in a tea.Program) to load the
// students.
func New(svc *roster.Service, opts Options) Model {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.TableHeight <= 0 {
		opts.TableHeight = DefaultTableHeight
	}
	if opts.AccentColor == "" {
		opts.AccentColor = DefaultAccentColor
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	st := newStyles(opts.AccentColor)

	m := Model{
		svc:        svc,
		ctx:        opts.Context,
		logger:     opts.Logger,
		title:      opts.Title,
		keys:       defaultKeyMap(),
		dialogKeys: defaultDialogKeys(),
		help:       help.New(),
		styles:     st,

		staticCursor: opts.StaticCursor,
	}

	placeholders := [focusTable]string{"Full name", "Unique roll number", "Course"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 0
		ti.Width = 40
		if opts.StaticCursor {
			ti.Cursor.SetMode(cursor.CursorStatic)
		}
		m.inputs[i] = ti
	}
	m.inputs[focusName].Focus()

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 24},
			{Title: "Roll No", Width: 14},
			{Title: "Course", Width: 20},
		}),
		table.WithHeight(opts.TableHeight),
		table.WithFocused(false),
		table.WithStyles(st.table),
	)

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.staticCursor {
		return m.loadStudents()
	}
	return tea.Batch(m.loadStudents(), textinput.Blink)
}

// Form returns the current content of the inputs.
func (m Model) Form() roster.Form {
	return roster.Form{
		Name:   m.value(focusName),
		RollNo: m.value(focusRollNo),
		Course: m.value(focusCourse),
	}
}

// value keeps unedited fields of the selected row byte-for-byte, since the
// input replaces tabs and newlines when a value is set.
func (m Model) value(field int) string {
	v := m.inputs[field].Value()
	if m.selected != noSelection && v == m.shown[field] {
		return m.stored[field]
	}
	return v
}

// Selected returns the id of the selected student, or zero.
func (m Model) Selected() int64 {
	return m.selected
}

// Students returns the rows currently shown.
func (m Model) Students() []state.Student {
	return m.students
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case studentsLoadedMsg:
		return m.applyStudents(msg), nil

	case actionDoneMsg:
		return m.applyAction(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) applyStudents(msg studentsLoadedMsg) Model {
	if msg.err != nil {
		m.logger.Error("failed to load students", slog.Any("error", msg.err))
		m.showMessage(roster.Describe(roster.ActionViewAll, msg.err))
		return m
	}

	m.students = msg.students
	rows := make([]table.Row, len(msg.students))
	found := false
	for i, st := range msg.students {
		rows[i] = studentRow(st)
		if st.ID == m.selected {
			found = true
		}
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
	if !found {
		m.selected = noSelection
	}
	return m
}

func (m Model) applyAction(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.pending = false

	if msg.err != nil {
		desc := roster.Describe(msg.action, msg.err)
		level := slog.LevelWarn
		if desc.Severity == roster.SeverityError {
			level = slog.LevelError
		}
		m.logger.Log(m.ctx, level, "action failed",
			slog.String("action", msg.action.String()),
			slog.Any("error", msg.err))
		m.showMessage(desc)
		return m, nil
	}

	m.clearForm()
	m.showMessage(roster.Success(msg.action))
	return m, m.loadStudents()
}

func (m *Model) showMessage(msg roster.Message) {
	m.dialog = &dialog{kind: dialogMessage, msg: msg}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere.
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}
	if m.pending {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		return m.startAction(roster.ActionAdd)
	case key.Matches(msg, m.keys.Update):
		return m.startAction(roster.ActionUpdate)
	case key.Matches(msg, m.keys.Delete):
		if m.selected == noSelection {
			m.showMessage(roster.Describe(roster.ActionDelete, roster.ErrNoSelection))
			return m, nil
		}
		m.dialog = &dialog{
			kind: dialogConfirmDelete,
			msg:  roster.Message{Severity: roster.SeverityWarning, Title: "Confirm Delete", Text: roster.ConfirmDelete},
		}
		return m, nil
	case key.Matches(msg, m.keys.ViewAll):
		return m, m.loadStudents()
	case key.Matches(msg, m.keys.Clear):
		m.clearForm()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Select):
		if m.focus == focusTable {
			m.selectRow(m.table.Cursor())
			return m, nil
		}
		return m, m.setFocus(m.focus + 1)
	}

	return m.updateFocused(msg)
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog.kind == dialogConfirmDelete {
		switch {
		case key.Matches(msg, m.dialogKeys.Yes):
			m.dialog = nil
			return m.startAction(roster.ActionDelete)
		case key.Matches(msg, m.dialogKeys.No):
			m.dialog = nil
		}
		return m, nil
	}

	if key.Matches(msg, m.dialogKeys.OK) {
		m.dialog = nil
	}
	return m, nil
}

// startAction runs a mutating action against the store in a command.
func (m Model) startAction(action roster.Action) (tea.Model, tea.Cmd) {
	if action != roster.ActionAdd && m.selected == noSelection {
		m.showMessage(roster.Describe(action, roster.ErrNoSelection))
		return m, nil
	}

	m.pending = true
	m.logger.Debug("action started", slog.String("action", action.String()), slog.Int64("selected", m.selected))
	return m, runAction(m.ctx, m.svc, action, m.selected, m.Form())
}

// updateFocused forwards msg to the focused input or the table. Moving the
// table cursor selects the row under it.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusTable {
		before := m.table.Cursor()
		m.table, cmd = m.table.Update(msg)
		if after := m.table.Cursor(); after != before {
			m.selectRow(after)
		}
		return m, cmd
	}

	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(focus int) tea.Cmd {
	if focus >= focusCount {
		focus = focusTable
	}
	m.focus = focus

	m.table.Blur()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if focus == focusTable {
		m.table.Focus()
		return nil
	}
	return m.inputs[focus].Focus()
}

// selectRow makes row i the selection and copies it into the inputs.
func (m *Model) selectRow(i int) {
	if i < 0 || i >= len(m.students) {
		return
	}
	st := m.students[i]
	m.selected = st.ID
	m.stored = [focusTable]string{st.Name, st.RollNo, st.Course}
	for f, v := range m.stored {
		m.inputs[f].SetValue(v)
		m.shown[f] = m.inputs[f].Value()
	}
}

func (m *Model) clearForm() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.selected = noSelection
	m.stored = [focusTable]string{}
	m.shown = [focusTable]string{}
}
