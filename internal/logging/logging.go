package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel parses debug, info, warn or error (case-insensitive).
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// New returns a text logger writing to w at the given level. Unknown levels
// fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	logger, _ := NewLeveled(w, level)
	return logger
}

// NewLeveled is New with a level that can be changed at runtime.
func NewLeveled(w io.Writer, level string) (*slog.Logger, *slog.LevelVar) {
	levelVar := new(slog.LevelVar)
	parsed, _ := ParseLevel(level)
	levelVar.Set(parsed)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar})), levelVar
}
