package notify

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/usecase"
)

func TestModuleProvidesNotifier(t *testing.T) {
	var (
		hub      *Hub
		notifier usecase.Notifier
	)
	app := fxtest.New(t,
		fx.Supply(&config.Config{NotifyBuffer: 8}),
		fx.Supply(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		Module,
		fx.Populate(&hub, &notifier),
	)
	app.RequireStart()
	defer app.RequireStop()

	if hub == nil || notifier == nil {
		t.Fatal("expected hub and notifier")
	}
	if notifier != usecase.Notifier(hub) {
		t.Fatal("expected notifier to be the hub")
	}
	if hub.buffer != 8 {
		t.Fatalf("expected buffer 8, got %d", hub.buffer)
	}
}
