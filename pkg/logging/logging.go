package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

type loggerKey struct{}

// WithLogger attaches a logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger stored in ctx, or slog.Default().
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// Sink receives the human readable status lines of a mirror run.
type Sink interface {
	Emit(line string)
}

// WriterSink prints each line to W.
type WriterSink struct {
	mu sync.Mutex
	W  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{W: w}
}

func (s *WriterSink) Emit(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.W, line)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(line string)

func (f SinkFunc) Emit(line string) { f(line) }
