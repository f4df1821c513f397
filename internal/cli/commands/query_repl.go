package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

const (
	replPrompt     = "rollbook> "
	replContPrompt = "     ...> "
)

func runQueryREPL(cmd *cobra.Command, dbPath, format string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openReadOnly(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     filepath.Join(filepath.Dir(dbPath), ".rollbook_history"),
		AutoComplete:    newQueryCompleter(ctx, db),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(out, "rollbook query (database: %s, read-only)\n", dbPath)
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if buf.Len() == 0 && strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(ctx, cmd, db, line, format); quit {
				break
			}
			continue
		}

		// Statements run once terminated by a semicolon.
		buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buf.WriteString(" ")
			rl.SetPrompt(replContPrompt)
			continue
		}
		rl.SetPrompt(replPrompt)

		query := strings.TrimSuffix(buf.String(), ";")
		buf.Reset()

		if err := executeAndRender(ctx, out, db, query, format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(out)
	}

	return nil
}

// handleDotCommand runs a REPL meta command and reports whether the
// session should end.
func handleDotCommand(ctx context.Context, cmd *cobra.Command, db *sql.DB, line, format string) bool {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	parts := strings.Fields(line)

	var err error
	switch command := strings.ToLower(parts[0]); command {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(out)
	case ".tables":
		err = listTablesFromDB(ctx, out, db, format)
	case ".schema":
		name := "students"
		if len(parts) > 1 {
			name = parts[1]
		}
		err = showSchemaFromDB(ctx, out, db, name, format)
	case ".count":
		var n int64
		if err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM students").Scan(&n); err == nil {
			_, _ = fmt.Fprintf(out, "%d students\n", n)
		}
	case ".clear":
		_, _ = fmt.Fprint(out, "\033[H\033[2J")
	default:
		_, _ = fmt.Fprintf(errOut, "Unknown command: %s (type .help for commands)\n", command)
	}

	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	_, _ = fmt.Fprint(w, `
Commands:
  .help            Show this help message
  .tables          List tables and views
  .schema [name]   Show the columns of a table (default: students)
  .count           Count the stored students
  .clear           Clear the screen
  .quit / .exit    Exit

Statements end with a semicolon and may span several lines.
The database is read-only here; use add/update/delete to change records.

`)
}

// newQueryCompleter completes dot commands, table names and the student columns.
func newQueryCompleter(ctx context.Context, db *sql.DB) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".schema"),
		readline.PcItem(".count"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItem("SELECT",
			readline.PcItem("id"),
			readline.PcItem("name"),
			readline.PcItem("roll_no"),
			readline.PcItem("course"),
			readline.PcItem("*"),
		),
	}

	rows, err := db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type IN ('table', 'view')
		AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return readline.NewPrefixCompleter(items...)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var name string
		if rows.Scan(&name) == nil {
			items = append(items, readline.PcItem(name))
		}
	}
	_ = rows.Err()

	return readline.NewPrefixCompleter(items...)
}
