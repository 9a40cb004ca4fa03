package infra

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// timestampLayout matches the "YYYY-MM-DD HH:MM:SS.mmm" rendering the
// original system's TimeStamp() produced, so log lines line up with the
// rest of the fabric's textual output.
const timestampLayout = "2006-01-02 15:04:05.000"

// NewLogger creates a slog.Logger with file rotation via lumberjack and
// a per-run correlation id, so concurrent runs' logs can be told apart
// even when they write to the same rotated file.
func NewLogger(cfg *Config) *slog.Logger {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	fileLogger := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "treasurysoa.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	writer := io.MultiWriter(os.Stdout, fileLogger)

	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceTimeAttr,
	}

	logger := slog.New(slog.NewJSONHandler(writer, opts))
	return logger.With("run_id", uuid.NewString())
}

// replaceTimeAttr renders the top-level time attribute in the fabric's
// own timestamp format instead of slog's default RFC3339.
func replaceTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			return slog.String(slog.TimeKey, t.Format(timestampLayout))
		}
	}
	return a
}
