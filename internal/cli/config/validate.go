package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// OutputFormats lists the accepted values of the output setting.
var OutputFormats = []string{"auto", "table", "json", "csv", "md", "markdown", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("database path is required")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if !validOutput(c.Output) {
		return fmt.Errorf("unknown output format %q (valid: %s)", c.Output, strings.Join(OutputFormats, ", "))
	}
	if c.UI != nil && c.UI.TableHeight < 0 {
		return fmt.Errorf("ui.table_height must not be negative")
	}
	return nil
}

// ParseLevel converts a log_level setting to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: use debug, info, warn or error", s)
	}
	return level, nil
}

func validOutput(s string) bool {
	if s == "" {
		return true
	}
	for _, f := range OutputFormats {
		if strings.EqualFold(s, f) {
			return true
		}
	}
	return false
}
