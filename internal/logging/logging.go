// Package logging configures the process-wide slog logger used for
// diagnostics. Records go to stderr so stdout only ever carries results.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable consulted when no level is set.
const EnvLevel = "LOG_LEVEL"

// DefaultLevel keeps normal runs silent.
const DefaultLevel = slog.LevelWarn

// ParseLevel accepts debug, info, warn, warning and error in any case.
// An empty string yields DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return DefaultLevel, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", s)
	}
}

// New returns a text logger tagged with the tool name.
func New(w io.Writer, tool string, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(h).With("tool", tool)
}

// Setup installs the default logger. An explicit level that does not parse
// is an error. When level is empty $LOG_LEVEL is used instead; a value there
// that does not parse falls back to DefaultLevel with a warning, since the
// variable may belong to another tool.
func Setup(w io.Writer, tool, level string) error {
	if level != "" {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		slog.SetDefault(New(w, tool, lvl))
		return nil
	}

	env := os.Getenv(EnvLevel)
	lvl, err := ParseLevel(env)
	logger := New(w, tool, lvl)
	slog.SetDefault(logger)
	if err != nil {
		logger.Warn("ignoring unknown log level", "env", EnvLevel, "value", env)
	}
	return nil
}
