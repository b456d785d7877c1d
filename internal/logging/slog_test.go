package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestSlogLogger_Levels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, tt := range []struct {
		level string
		log   func(l *SlogLogger)
	}{
		{"DEBUG", func(l *SlogLogger) { l.Debug(ctx, "m") }},
		{"INFO", func(l *SlogLogger) { l.Info(ctx, "m") }},
		{"WARN", func(l *SlogLogger) { l.Warn(ctx, "m") }},
		{"ERROR", func(l *SlogLogger) { l.Error(ctx, "m") }},
	} {
		l, buf := newBufferLogger(t)
		tt.log(l)
		rec := lastRecord(t, buf)
		require.Equal(t, tt.level, rec["level"])
		require.Equal(t, "m", rec["msg"])
	}
}

func TestSlogLogger_With(t *testing.T) {
	t.Parallel()

	l, buf := newBufferLogger(t)
	child := l.With("module", "httpapi")
	child.Info(context.Background(), "hello")

	rec := lastRecord(t, buf)
	require.Equal(t, "httpapi", rec["module"])
}
