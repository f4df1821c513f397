package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Add students from a spreadsheet",
		Long: `Add a student for every row of the first sheet of an Excel workbook.

If the first row is a header naming Name, Roll No and Course those columns
are used in any order; otherwise columns A, B and C are read. Rows with an
empty field or an already used roll number are skipped and listed.`,
		Example: `  rollbook import roster.xlsx`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0])
		},
	}

	return cmd
}

func runImport(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := cmdCtx.Service.Import(cmd.Context(), f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Imported %d students", res.Added)
	if len(res.Skipped) > 0 {
		_, _ = fmt.Fprintf(out, ", skipped %d rows:\n", len(res.Skipped))
		for _, s := range res.Skipped {
			_, _ = fmt.Fprintf(out, "  row %d: %s\n", s.Row, s.Reason)
		}
		return nil
	}
	_, _ = fmt.Fprintln(out)
	return nil
}
