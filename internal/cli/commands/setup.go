package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leapstack-labs/rollbook/internal/cli/config"
	"github.com/leapstack-labs/rollbook/internal/roster"
	"github.com/leapstack-labs/rollbook/internal/state"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Store   *state.SQLiteStore
	Service *roster.Service
}

// NewCommandContext opens the student database and builds the roster service.
// The returned cleanup function must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	store, err := state.Open(cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", cfg.Database, err)
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close database", slog.Any("error", err))
		}
	}

	return &CommandContext{
		Cfg:     cfg,
		Logger:  logger,
		Store:   store,
		Service: roster.NewService(store, logger),
	}, cleanup, nil
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Database: getEnvOrDefault("ROLLBOOK_DATABASE", config.DefaultDatabase),
		LogFile:  os.Getenv("ROLLBOOK_LOG_FILE"),
		LogLevel: getEnvOrDefault("ROLLBOOK_LOG_LEVEL", config.DefaultLogLevel),
		Verbose:  os.Getenv("ROLLBOOK_VERBOSE") == "true",
		Output:   getEnvOrDefault("ROLLBOOK_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveFormat turns the configured output format into a concrete one.
// "auto" renders a table on a terminal and Markdown otherwise.
func resolveFormat(format string, w io.Writer) string {
	format = strings.ToLower(format)
	switch format {
	case "", "auto":
		if isTerminal(w) {
			return "table"
		}
		return "md"
	case "markdown":
		return "md"
	default:
		return format
	}
}

// actionError carries the user-facing sentence for a failed action while
// keeping the cause reachable for errors.Is.
type actionError struct {
	msg roster.Message
	err error
}

func (e *actionError) Error() string { return e.msg.Text }
func (e *actionError) Unwrap() error { return e.err }

// describeError turns an action error into the user-facing sentence.
func describeError(action roster.Action, err error) error {
	return &actionError{msg: roster.Describe(action, err), err: err}
}
