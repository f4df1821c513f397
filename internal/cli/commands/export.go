package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Export all students to a spreadsheet",
		Long: `Write every student to an Excel workbook.

The sheet has the columns ID, Name, Roll No and Course and can be read back
with the import command. An existing file is overwritten.`,
		Example: `  rollbook export roster.xlsx`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0])
		},
	}

	return cmd
}

func runExport(cmd *cobra.Command, path string) (err error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fmt.Errorf("export file must have the .xlsx extension: %s", path)
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	n, err := cmdCtx.Service.Export(cmd.Context(), f)
	if err != nil {
		return err
	}

	cmdCtx.Logger.Debug("export written", slog.String("path", path))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d students to %s\n", n, path)
	return nil
}
