package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/rollbook/internal/state"
	"github.com/spf13/cobra"

	// sqlite driver for read-only queries.
	_ "modernc.org/sqlite"
)

// openReadOnly opens the student database without write access.
func openReadOnly(path string) (*sql.DB, error) {
	if state.IsMemoryPath(path) {
		return nil, errors.New("cannot query an in-memory database")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("database not found at %s (add a student first)", path)
		}
		return nil, err
	}
	return sql.Open("sqlite", "file:"+path+"?mode=ro")
}

// QueryOptions holds options for the query command.
type QueryOptions struct {
	Input string
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query [SQL]",
		Short: "Run read-only SQL against the student database",
		Long: `Run SQL directly against the student database.

The database is opened read-only, so only SELECT-style statements succeed.
SQL is taken from the arguments, from --input, or from piped standard
input. On a terminal with none of these an interactive prompt is started.

The output format follows the global --output flag.`,
		Example: `  # Students per course
  rollbook query "SELECT course, COUNT(*) FROM students GROUP BY course"

  # As JSON
  rollbook query "SELECT * FROM students" -o json

  # Interactive mode
  rollbook query`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	cfg := getConfig()
	format := resolveFormat(cfg.Output, cmd.OutOrStdout())

	var sqlQuery string
	switch {
	case len(args) > 0:
		sqlQuery = strings.Join(args, " ")
	case opts.Input != "":
		content, err := os.ReadFile(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		sqlQuery = string(content)
	case !isTerminal(cmd.InOrStdin()):
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		sqlQuery = string(content)
	default:
		return runQueryREPL(cmd, cfg.Database, format)
	}

	if strings.TrimSpace(sqlQuery) == "" {
		return errors.New("no SQL given")
	}

	db, err := openReadOnly(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return executeAndRender(cmd.Context(), cmd.OutOrStdout(), db, sqlQuery, format)
}

func executeAndRender(ctx context.Context, w io.Writer, db *sql.DB, sqlQuery, format string) error {
	rows, err := db.QueryContext(ctx, sqlQuery)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return renderResults(w, rows, format)
}
