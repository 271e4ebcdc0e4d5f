package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestGetLoggerFallsBackToDefault(t *testing.T) {
	if GetLogger(context.Background()) != slog.Default() {
		t.Fatal("expected default logger")
	}
}

func TestGetLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	GetLogger(ctx).Info("hello", "k", "v")
	if !bytes.Contains(buf.Bytes(), []byte("k=v")) {
		t.Fatalf("expected log output, got %q", buf.String())
	}
}

func TestWriterSinkAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)
	sink.Emit("first")
	sink.Emit("second")

	if got := buf.String(); got != "first\nsecond\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
