package report

import (
	"context"
	"log/slog"
)

// Log forwards events to a structured logger.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a reporter backed by logger. A nil logger uses slog.Default().
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

// Report logs e at warn level for warnings and info level otherwise.
func (l *Log) Report(e Event) {
	level := slog.LevelInfo
	if e.Kind.IsWarning() {
		level = slog.LevelWarn
	}
	l.logger.LogAttrs(context.Background(), level, e.Message,
		slog.String("kind", string(e.Kind)),
		slog.String("subject", e.Subject),
	)
}
