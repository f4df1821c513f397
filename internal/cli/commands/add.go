package commands

import (
	"fmt"

	"github.com/leapstack-labs/rollbook/internal/roster"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	var form roster.Form

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Long: `Add a new student record.

All three fields are required; surrounding whitespace is removed. The roll
number must not already be in use.`,
		Example: `  rollbook add --name "Ada Lovelace" --roll-no CS-001 --course Computing`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := cmdCtx.Service.Add(cmd.Context(), form)
			if err != nil {
				return describeError(roster.ActionAdd, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d)\n", roster.Success(roster.ActionAdd).Text, st.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "Student name")
	cmd.Flags().StringVar(&form.RollNo, "roll-no", "", "Unique roll number")
	cmd.Flags().StringVar(&form.Course, "course", "", "Course")

	return cmd
}
