package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Fields represents structured logging fields.
type Fields map[string]any

// ParseLevel converts a configured level name (debug, info, warn, error; any case) to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("%w: invalid log level: %q", ErrInvalidConfig, level)
	}
	return parsed, nil
}

// SetupLogger installs the default slog logger, writing console text or JSON to w
// (stderr when nil).
func SetupLogger(level, format string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	slogLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	switch format {
	case FormatConsole:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("%w: invalid log format: %q", ErrInvalidConfig, format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// LogError logs err at error level with fields.
func LogError(err error, msg string, fields Fields) {
	logFields(slog.LevelError, msg, fields, slog.String("error", err.Error()))
}

// LogInfo logs an info message with fields.
func LogInfo(msg string, fields Fields) {
	logFields(slog.LevelInfo, msg, fields)
}

// LogDebug logs a debug message with fields.
func LogDebug(msg string, fields Fields) {
	logFields(slog.LevelDebug, msg, fields)
}

// logFields emits extra first, then fields sorted by key.
func logFields(level slog.Level, msg string, fields Fields, extra ...slog.Attr) {
	attrs := make([]slog.Attr, 0, len(fields)+len(extra))
	attrs = append(attrs, extra...)
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}

	slog.LogAttrs(context.Background(), level, msg, attrs...)
}
