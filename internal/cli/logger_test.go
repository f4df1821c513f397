package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/rollbook/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Stderr(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, closer, err := newLogger(&config.Config{LogFile: config.StderrLogFile, LogLevel: "warn"}, buf)
	require.NoError(t, err)
	defer func() { _ = closer.Close() }()

	logger.Info("hidden")
	logger.Warn("shown", "roll_no", "CS-001")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "roll_no=CS-001")
}

func TestNewLogger_VerboseForcesDebug(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, _, err := newLogger(&config.Config{LogFile: config.StderrLogFile, LogLevel: "error", Verbose: true}, buf)
	require.NoError(t, err)

	logger.Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rollbook.log")
	logger, closer, err := newLogger(&config.Config{LogFile: path, LogLevel: "info"}, nil)
	require.NoError(t, err)

	logger.Info("student added", "id", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "student added")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := newLogger(&config.Config{LogFile: config.StderrLogFile, LogLevel: "loud"}, new(bytes.Buffer))
	assert.Error(t, err)
}
