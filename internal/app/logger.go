package app

import (
	"io"
	"log/slog"
)

// appName is attached to every record the app logs.
const appName = "fgviewer"

// newLogger creates the isolated logger of one App. It does not set the
// global logger. levelStr takes slog level names ("debug", "WARN", "info+2");
// anything else means info. Debug logging also records source locations.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler
	switch formatStr {
	case "json":
		handler = slog.NewJSONHandler(outW, handlerOpts)
	default:
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler).With("app", appName)
}
