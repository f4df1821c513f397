package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leapstack-labs/rollbook/internal/roster"
	"github.com/leapstack-labs/rollbook/internal/state"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all students",
		Long: `List every stored student ordered by id.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown

Use --output to override: auto, table, json, csv, md, yaml`,
		Example: `  # List students (auto-detect output format)
  rollbook list

  # As JSON for scripts
  rollbook list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	students, err := cmdCtx.Service.List(cmd.Context())
	if err != nil {
		return describeError(roster.ActionViewAll, err)
	}

	return renderStudents(cmd.OutOrStdout(), students, resolveFormat(cmdCtx.Cfg.Output, cmd.OutOrStdout()))
}

func renderStudents(w io.Writer, students []state.Student, format string) error {
	if students == nil {
		students = []state.Student{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(students)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(students); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(students) == 0 && format != "csv" {
		_, _ = fmt.Fprintln(w, "No students found.")
		return nil
	}

	rs := &resultSet{Columns: []string{"ID", "Name", "Roll No", "Course"}}
	for _, st := range students {
		rs.Rows = append(rs.Rows, []any{st.ID, st.Name, st.RollNo, st.Course})
	}
	return renderResultSet(w, rs, format)
}
