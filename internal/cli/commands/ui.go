package commands

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/rollbook/internal/tui"
	"github.com/spf13/cobra"
)

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive student form",
		Long: `Open the interactive student form.

The form has three fields (Name, Roll No, Course), a table of all students
and four actions:

  ctrl+a  Add        ctrl+u  Update
  ctrl+d  Delete     ctrl+r  View All

Select a row in the table to copy it into the fields for editing. This is
also what running rollbook without a command does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunUI(cmd)
		},
	}
}

// RunUI runs the interactive form until the user quits.
func RunUI(cmd *cobra.Command) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return errors.New("the interactive form needs a terminal; use the add, update, delete and list commands in scripts")
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ui := cmdCtx.Cfg.GetUIConfig()
	model := tui.New(cmdCtx.Service, tui.Options{
		Title:       "Student Record Management System",
		TableHeight: ui.TableHeight,
		AccentColor: ui.AccentColor,
		Logger:      cmdCtx.Logger,
		Context:     cmd.Context(),
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("form exited: %w", err)
	}
	return nil
}
