package fastcluster

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fastcluster-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCriteria adds the merge criteria to the logger.
func (l *Logger) WithCriteria(separation, resolution float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("separation", separation, "resolution", resolution),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAdd logs a single point ingestion.
func (l *Logger) LogAdd(p Point, id ClusterID, merged bool, err error) {
	if err != nil {
		l.Warn("add rejected",
			"x", p.X,
			"y", p.Y,
			"error", err,
		)
		return
	}
	l.Debug("add completed",
		"x", p.X,
		"y", p.Y,
		"cluster", id,
		"merged", merged,
	)
}

// LogBatch logs a bulk ingestion.
func (l *Logger) LogBatch(count, merged int, err error) {
	bl := l.WithCount(count)
	if err != nil {
		bl.Warn("batch rejected",
			"error", err,
		)
		return
	}
	bl.Debug("batch completed",
		"merged", merged,
		"created", count-merged,
	)
}

// LogIngest logs the outcome of a multi-producer or streaming ingestion.
func (l *Logger) LogIngest(ctx context.Context, sources, added int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest failed",
			"sources", sources,
			"added", added,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "ingest completed",
		"sources", sources,
		"added", added,
	)
}
