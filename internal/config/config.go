// Package config holds the fixed paths and ambient settings for fix-logo.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LogLevelEnv names the environment variable that controls log verbosity.
const LogLevelEnv = "FIX_LOGO_LOG_LEVEL"

// DefaultInputPath is the logo that gets cleaned, relative to the working directory.
const DefaultInputPath = "ui/public/logo.png"

// DefaultOutputPaths are written in order. The first overwrites the input.
var DefaultOutputPaths = []string{"ui/public/logo.png", "backend/logo.png"}

// Config describes one run of the fixer.
type Config struct {
	InputPath   string
	OutputPaths []string
	LogLevel    string
}

// Default returns the fixed paths with no environment applied.
func Default() *Config {
	outputs := make([]string, len(DefaultOutputPaths))
	copy(outputs, DefaultOutputPaths)
	return &Config{
		InputPath:   DefaultInputPath,
		OutputPaths: outputs,
	}
}

// Load returns the default config with the log level taken from the
// environment. A .env file in the working directory is read if present.
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := Default()
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(os.Getenv(LogLevelEnv)))
	return cfg, nil
}

// Debug reports whether debug logging was requested.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}
