package state

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate creates the students table if it does not exist yet.
func (s *SQLiteStore) Migrate() error {
	if s.db == nil {
		return errNotOpened
	}
	return migrate(s.db, s.logger)
}

// MigrateWithDB runs migrations using a raw database connection.
func MigrateWithDB(db *sql.DB) error {
	return migrate(db, slog.New(slog.DiscardHandler))
}

// HasSchema reports whether the students table exists.
func (s *SQLiteStore) HasSchema() (bool, error) {
	if s.db == nil {
		return false, errNotOpened
	}
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'students'`,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to inspect schema: %w", err)
	}
	return n == 1, nil
}

func migrate(db *sql.DB, logger *slog.Logger) error {
	if err := configureGoose(logger); err != nil {
		return err
	}
	// The records file holds only the students table, so goose keeps no version table.
	if err := goose.Up(db, "migrations", goose.WithNoVersioning()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func configureGoose(logger *slog.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// gooseLogger sends goose output to slog; the terminal belongs to the form.
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "goose"))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "goose"))
}
