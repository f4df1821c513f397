package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/rollbook/internal/roster"
	"github.com/spf13/cobra"
)

// parseID parses a student id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid student id %q", arg)
	}
	return id, nil
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand() *cobra.Command {
	var name, rollNo, course string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a student",
		Long: `Overwrite the fields of the student with the given id.

Fields not given on the command line keep their stored value. The result
is validated like a new record: no field may be empty and the roll number
must stay unique.`,
		Example: `  # Move student 3 to another course
  rollbook update 3 --course Mathematics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			current, err := cmdCtx.Service.Get(cmd.Context(), id)
			if err != nil {
				return describeError(roster.ActionUpdate, err)
			}

			form := roster.FormFromStudent(*current)
			flags := cmd.Flags()
			if flags.Changed("name") {
				form.Name = name
			}
			if flags.Changed("roll-no") {
				form.RollNo = rollNo
			}
			if flags.Changed("course") {
				form.Course = course
			}

			if _, err := cmdCtx.Service.Update(cmd.Context(), id, form); err != nil {
				return describeError(roster.ActionUpdate, err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), roster.Success(roster.ActionUpdate).Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&rollNo, "roll-no", "", "New roll number")
	cmd.Flags().StringVar(&course, "course", "", "New course")

	return cmd
}
