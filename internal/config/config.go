package config

import (
	"fmt"
	"log/slog"
)

// Version is the program version, overridden at build time with
// -ldflags "-X github.com/kula-app/value-compare/internal/config.Version=..."
var Version = "dev"

// DefaultName is the program name shown in the usage text
const DefaultName = "compare"

// Config represents the program configuration
type Config struct {
	// Name is the program name used in the usage text
	Name string

	// Version is the program version used in the usage text
	Version string

	// LogLevel is the minimum level written to the terminal logger
	LogLevel slog.Level
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Name:     DefaultName,
		Version:  Version,
		LogLevel: slog.LevelWarn, // Keep regular runs silent on stderr
	}
}

// Usage renders the help message shown when the argument count is wrong
func Usage(cfg *Config) string {
	return fmt.Sprintf(`%[1]s %[2]s - Compare numbers or text values

Usage:
    %[1]s <VALUE1> <VALUE2>

Arguments:
    <VALUE1>    First value to compare (number or text)
    <VALUE2>    Second value to compare (number or text)

Comparison Rules:
    - Numbers are compared mathematically (>, <, ==)
    - Text is compared for equality (==, !=)
    - Mixed types are converted to strings and compared

Examples:
    %[1]s 10 20
    %[1]s 'hello' 'world'
    %[1]s 5 '5'
`, cfg.Name, cfg.Version)
}
