package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kula-app/value-compare/internal/comparator"
	"github.com/kula-app/value-compare/internal/config"
	"github.com/kula-app/value-compare/internal/logging"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// Exactly two values after the program name are compared. Any other count prints the usage text instead.
// Arguments are never parsed as flags, so negative numbers such as "-1" are values.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()
	return runWithConfig(ctx, cfg, args, stdout, stderr)
}

func runWithConfig(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	// Logs go to stderr so stdout only ever carries the result or the usage text
	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel))

	var values []string
	if len(args) > 0 {
		values = args[1:]
	}

	if len(values) != 2 {
		logger.DebugContext(ctx, "wrong argument count, showing usage",
			"want", 2,
			"got", len(values))
		if _, err := io.WriteString(stdout, config.Usage(cfg)); err != nil {
			return fmt.Errorf("failed to write usage: %w", err)
		}
		return nil
	}

	c := comparator.New(logger)
	result := c.CompareArgs(ctx, values[0], values[1])

	if _, err := fmt.Fprintln(stdout, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
