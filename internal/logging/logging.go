// Package logging builds the process logger.
//
// Logs always go to a writer other than stdout (normally stderr): stdout
// carries the JSON-RPC stream when serving.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// EnvLevel overrides the configured log level when set.
const EnvLevel = "COLORPICK_LOG_LEVEL"

// ParseLevel maps a level name to a slog.Level. Names are case-insensitive;
// "warning" is accepted as an alias of "warn".
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New returns a text logger writing to w at the given level.
func New(level slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
