package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/polkiloo/tareffa/internal/config"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New(&config.Config{})
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestNewHonoursLevel(t *testing.T) {
	l := New(&config.Config{LogLevel: "debug"})
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}
}

func TestNewNilConfig(t *testing.T) {
	if l := New(nil); !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level for nil config")
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	prev := output
	output = &buf
	t.Cleanup(func() { output = prev })

	New(&config.Config{}).Info("order created", slog.String("order_id", "order-1"))
	if !strings.Contains(buf.String(), `"order_id":"order-1"`) {
		t.Fatalf("unexpected log output: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
