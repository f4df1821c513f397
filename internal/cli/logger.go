package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/rollbook/internal/cli/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation limits.
const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// newLogger builds the process logger from configuration. The returned
// closer releases the log file.
func newLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.LogFile {
	case "":
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	case config.StderrLogFile:
		return slog.New(slog.NewTextHandler(stderr, opts)), io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(cfg.LogFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, err
		}
	}

	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}
	return slog.New(slog.NewTextHandler(w, opts)), w, nil
}
