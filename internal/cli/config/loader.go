package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store the logger in a command context.
type loggerKey struct{}

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// findConfigFile finds the config file to use.
// Priority: explicit path > ./rollbook.yaml > ./rollbook.yml > user config dir
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(dir, "rollbook", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	// Paths given as flags, env vars or defaults are relative to the working
	// directory; paths set in the config file are relative to that file.
	flagPaths := map[string]string{}
	if flags != nil {
		for _, name := range []string{"database", "log-file"} {
			if !flags.Changed(name) {
				continue
			}
			if v, _ := flags.GetString(name); v != "" {
				flagPaths[name] = absPath(v)
			}
		}
	}

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"database":        DefaultDatabase,
		"log_file":        DefaultLogFile,
		"log_level":       DefaultLogLevel,
		"verbose":         false,
		"output":          DefaultOutput,
		"ui.table_height": DefaultTableHeight,
		"ui.accent_color": DefaultAccentColor,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	// Only paths written in the file itself resolve against its directory.
	fileRelative := map[string]bool{}
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		fk := koanf.New(".")
		if err := fk.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
		if err := k.Merge(fk); err != nil {
			return nil, fmt.Errorf("error merging config file %s: %w", configFileUsed, err)
		}
		for _, key := range []string{"database", "log_file"} {
			_, fromEnv := os.LookupEnv(envPrefix + strings.ToUpper(key))
			fileRelative[key] = fk.Exists(key) && !fromEnv
		}
	}

	// 3. Environment: ROLLBOOK_LOG_LEVEL -> log_level, ROLLBOOK_UI_TABLE_HEIGHT -> ui.table_height
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Explicitly set flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	baseDir := ""
	if configFileUsed != "" {
		if abs, err := filepath.Abs(configFileUsed); err == nil {
			baseDir = filepath.Dir(abs)
		}
	}

	if p, ok := flagPaths["database"]; ok {
		cfg.Database = p
	} else if fileRelative["database"] {
		cfg.Database = resolvePathRelativeTo(cfg.Database, baseDir)
	}
	if p, ok := flagPaths["log-file"]; ok {
		cfg.LogFile = p
	} else if fileRelative["log_file"] {
		cfg.LogFile = resolvePathRelativeTo(cfg.LogFile, baseDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	currentConfig = &cfg
	return &cfg, nil
}

// envKey maps an environment variable name to a config key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "ui_"); ok {
		return "ui." + rest
	}
	return key
}

// absPath makes a flag path absolute, leaving special values untouched.
func absPath(p string) string {
	if isSpecialPath(p) {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if baseDir == "" || path == "" || filepath.IsAbs(path) || isSpecialPath(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func isSpecialPath(p string) bool {
	return p == StderrLogFile || p == ":memory:" || strings.HasPrefix(p, "file:")
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the configuration loaded by the last LoadConfig call.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
func LoggerKey() interface{} {
	return loggerKey{}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.New(slog.DiscardHandler)
}
