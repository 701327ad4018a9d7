package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New constructs a text slog logger writing to w at the given level.
// A nil writer discards everything.
func New(w io.Writer, level string) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler).With("app", "weather-terminal")
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return New(io.Discard, "error")
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
