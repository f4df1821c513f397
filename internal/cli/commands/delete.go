package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/rollbook/internal/roster"
	"github.com/spf13/cobra"
)

// errNotConfirmed is returned when the user declines a delete.
var errNotConfirmed = errors.New("delete cancelled")

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a student",
		Long: `Delete the student with the given id.

You are asked to confirm first; answer "y" to proceed. Use --yes to skip
the question in scripts.`,
		Example: `  rollbook delete 3
  rollbook delete 3 --yes`,
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
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

			st, err := cmdCtx.Service.Get(cmd.Context(), id)
			if err != nil {
				return describeError(roster.ActionDelete, err)
			}

			if !yes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s  %s\n", st.ID, st.Name, st.RollNo, st.Course)
				if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), roster.ConfirmDelete) {
					return errNotConfirmed
				}
			}

			if err := cmdCtx.Service.Delete(cmd.Context(), id); err != nil {
				return describeError(roster.ActionDelete, err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), roster.Success(roster.ActionDelete).Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")

	return cmd
}

// confirm asks a yes/no question and reads one line of answer.
// Anything but y/yes, including end of input, means no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
