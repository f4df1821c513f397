package state

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	// sqlite driver; the package is also used for its error type.
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// SQLiteStore implements StudentStore using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a new, unopened SQLite store.
// If logger is nil, logging is discarded.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// NewSQLiteStoreWithDB wraps an already opened database handle.
// The caller is responsible for having created the schema.
func NewSQLiteStoreWithDB(db *sql.DB, logger *slog.Logger) *SQLiteStore {
	s := NewSQLiteStore(logger)
	s.db = db
	return s
}

// Open opens a store at path and brings its schema up to date.
func Open(path string, logger *slog.Logger) (*SQLiteStore, error) {
	s := NewSQLiteStore(logger)
	if err := s.Open(path); err != nil {
		return nil, err
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Open opens a connection to the SQLite database at path, creating the
// parent directory if needed. Use MemoryPath for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	if path == "" {
		return fmt.Errorf("database path is empty")
	}

	dsn := path + "?_pragma=busy_timeout(5000)"
	if path != MemoryPath {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn += "&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// One connection: the file belongs to this process alone, and an
	// in-memory database only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	s.logger.Debug("opened database", slog.String("path", path))
	return nil
}

// Path returns the path the store was opened with.
func (s *SQLiteStore) Path() string {
	return s.path
}

// DB exposes the underlying handle for read-only inspection.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// IsMemoryPath reports whether path refers to an in-memory database.
func IsMemoryPath(path string) bool {
	return path == MemoryPath || strings.HasPrefix(path, "file::memory:")
}
