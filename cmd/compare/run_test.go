package main

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kula-app/value-compare/internal/config"
)

func TestRun_Compare(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "numbers", args: []string{"compare", "10", "20"}, want: "10 < 20\n"},
		{name: "equal numbers", args: []string{"compare", "1", "1"}, want: "1 == 1\n"},
		{name: "greater fraction", args: []string{"compare", "1.2", "0.3"}, want: "1.2 > 0.3\n"},
		{name: "texts", args: []string{"compare", "hello", "world"}, want: "hello != world\n"},
		{name: "equal texts", args: []string{"compare", "abc", "abc"}, want: "abc == abc\n"},
		{name: "mixed", args: []string{"compare", "1", "abc"}, want: "1 != abc\n"},
		{name: "number and numeric text", args: []string{"compare", "5", "5.0"}, want: "5 == 5\n"},
		{name: "negative numbers are values", args: []string{"compare", "-1", "1"}, want: "-1 < 1\n"},
		{name: "flag lookalikes are values", args: []string{"compare", "--help", "-h"}, want: "--help != -h\n"},
		{name: "empty strings", args: []string{"compare", "", ""}, want: " == \n"},
		{name: "signed NaN", args: []string{"compare", "-nan", "x"}, want: "NaN != x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			if err := run(t.Context(), tt.args, &stdout, &stderr); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
			if got := stderr.String(); got != "" {
				t.Errorf("stderr = %q, want empty", got)
			}
		})
	}
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "nil args", args: nil},
		{name: "no values", args: []string{"compare"}},
		{name: "one value", args: []string{"compare", "1"}},
		{name: "three values", args: []string{"compare", "1", "2", "3"}},
	}

	want := config.Usage(config.DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			if err := run(t.Context(), tt.args, &stdout, &stderr); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if got := stdout.String(); got != want {
				t.Errorf("stdout = %q, want usage %q", got, want)
			}
		})
	}
}

func TestRun_DebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.LogLevel = slog.LevelDebug

	if err := runWithConfig(t.Context(), cfg, []string{"compare", "2", "x"}, &stdout, &stderr); err != nil {
		t.Fatalf("runWithConfig() error = %v", err)
	}
	if got := stdout.String(); got != "2 != x\n" {
		t.Errorf("stdout = %q, want %q", got, "2 != x\n")
	}
	if !strings.Contains(stderr.String(), "compared values") {
		t.Errorf("stderr = %q, want debug log of the comparison", stderr.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRun_WriteError(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "result", args: []string{"compare", "1", "2"}, errContains: "failed to write result"},
		{name: "usage", args: []string{"compare"}, errContains: "failed to write usage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			err := run(t.Context(), tt.args, failingWriter{}, &stderr)
			if err == nil {
				t.Fatal("run() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("run() error = %q, want it to contain %q", err.Error(), tt.errContains)
			}
		})
	}
}
