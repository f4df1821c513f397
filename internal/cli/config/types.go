// Package config provides configuration management for the rollbook CLI.
package config

// UIConfig holds settings for the interactive form.
type UIConfig struct {
	TableHeight int    `koanf:"table_height"`
	AccentColor string `koanf:"accent_color"`
}

// DefaultUIConfig returns a UIConfig with default values.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		TableHeight: DefaultTableHeight,
		AccentColor: DefaultAccentColor,
	}
}

// GetUIConfig returns the UI config with defaults applied for any unset values.
func (c *Config) GetUIConfig() *UIConfig {
	if c.UI == nil {
		return DefaultUIConfig()
	}
	ui := *c.UI
	if ui.TableHeight == 0 {
		ui.TableHeight = DefaultTableHeight
	}
	if ui.AccentColor == "" {
		ui.AccentColor = DefaultAccentColor
	}
	return &ui
}

// Config holds all CLI configuration options.
type Config struct {
	Database string    `koanf:"database"`
	LogFile  string    `koanf:"log_file"`
	LogLevel string    `koanf:"log_level"`
	Verbose  bool      `koanf:"verbose"`
	Output   string    `koanf:"output"`
	UI       *UIConfig `koanf:"ui"`
}

// Default configuration values.
const (
	DefaultDatabase    = "students.db"
	DefaultLogFile     = ".rollbook/rollbook.log"
	DefaultLogLevel    = "info"
	DefaultOutput      = "auto" // TTY=table, non-TTY=markdown
	DefaultTableHeight = 10
	DefaultAccentColor = "63"

	// StderrLogFile sends logs to standard error instead of a file.
	StderrLogFile = "-"

	envPrefix = "ROLLBOOK_"
)

// configFileNames are searched, in order, in the working directory.
var configFileNames = []string{"rollbook.yaml", "rollbook.yml"}
