package logging

import (
	"context"
	"io"
	"log/slog"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger backs Logger with log/slog. The request context is handed to the
// handler on every record.
type SlogLogger struct {
	base *slog.Logger
}

func New(base *slog.Logger) *SlogLogger {
	return &SlogLogger{base: base}
}

// NewJSONLogger is what gophauth-server logs with: one JSON object per line,
// records below level dropped.
func NewJSONLogger(w io.Writer, level slog.Level) *SlogLogger {
	return New(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.base.Log(ctx, slog.LevelDebug, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.base.Log(ctx, slog.LevelInfo, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.base.Log(ctx, slog.LevelWarn, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.base.Log(ctx, slog.LevelError, msg, args...)
}

// With returns a child carrying args on every record; s itself is unchanged.
func (s *SlogLogger) With(args ...any) Logger {
	return New(s.base.With(args...))
}
