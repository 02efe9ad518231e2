package xslog

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const EnvKey = "LOG_LEVEL"

// NewLogger returns a JSON logger at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewLoggerFromEnv reads LOG_LEVEL (debug, info, warn, error) and falls back
// to info for unset or unrecognized values.
func NewLoggerFromEnv(w io.Writer) *slog.Logger {
	return NewLogger(w, levelFromEnv())
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv(EnvKey)) {
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
