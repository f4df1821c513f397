// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/rollbook/internal/roster"
	"github.com/leapstack-labs/rollbook/internal/state"
	"github.com/spf13/cobra"
)

// SetupTestDatabase creates a student database in a temporary directory,
// adds the given students and returns its path.
func SetupTestDatabase(t *testing.T, students ...roster.Form) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "students.db")
	store, err := state.Open(path, nil)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = store.Close() }()

	svc := roster.NewService(store, nil)
	for _, f := range students {
		if _, err := svc.Add(context.Background(), f); err != nil {
			t.Fatalf("failed to add %s: %v", f.RollNo, err)
		}
	}
	return path
}

// Result is the captured outcome of a command run.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteCommand runs cmd with args, feeding stdin (which may be empty)
// and capturing both output streams.
func ExecuteCommand(cmd *cobra.Command, stdin string, args ...string) Result {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(io.NopCloser(strings.NewReader(stdin)))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertMarkdownTable checks that md is a pipe table with the given header
// cells and dataRows body rows.
func AssertMarkdownTable(t *testing.T, md string, header []string, dataRows int) {
	t.Helper()

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(md), "\n") {
		if strings.HasPrefix(line, "|") {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		t.Fatalf("no markdown table in %q", md)
	}
	for _, h := range header {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header %q does not contain %q", lines[0], h)
		}
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("missing separator row, got %q", lines[1])
	}
	if got := len(lines) - 2; got != dataRows {
		t.Errorf("got %d body rows, want %d", got, dataRows)
	}
}
