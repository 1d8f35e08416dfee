package logs

import (
	"log/slog"
	"os"
	"strings"
)

// GetLoggerFromString maps a LOG_LEVEL value to a logger. Unknown
// values fall back to info rather than failing startup.
func GetLoggerFromString(level string) *slog.Logger {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return GetLoggerFromLevel(slog.LevelDebug)
	case "warn":
		return GetLoggerFromLevel(slog.LevelWarn)
	case "error":
		return GetLoggerFromLevel(slog.LevelError)
	default:
		return GetLoggerFromLevel(slog.LevelInfo)
	}
}

func GetLoggerFromLevel(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
