package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/notify"
	testhelpers "github.com/polkiloo/tareffa/internal/test"
	"github.com/polkiloo/tareffa/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestDispatcher(hub *notify.Hub) *worker.WebhookDispatcher {
	return worker.NewWebhookDispatcher(hub, &testhelpers.WebhookClientStub{}, 1, 1, discardLogger())
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
	if server.ReadHeaderTimeout != readHeaderTimeout {
		t.Fatalf("expected read header timeout %v, got %v", readHeaderTimeout, server.ReadHeaderTimeout)
	}
}

func TestNewWebhookDispatcherUsesConfig(t *testing.T) {
	dispatcher := newWebhookDispatcher(workerParams{
		Hub:    notify.NewHub(1, discardLogger()),
		Client: &testhelpers.WebhookClientStub{},
		Config: &config.Config{NotifyWorkers: 3, NotifyBuffer: 5},
		Logger: discardLogger(),
	})
	if dispatcher == nil {
		t.Fatal("expected dispatcher instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	hub := notify.NewHub(1, discardLogger())
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Worker:     newTestDispatcher(hub),
		Hub:        hub,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := recorder.Start(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}
	stream, _ := hub.Subscribe("user-123")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = recorder.Stop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}

	select {
	case _, ok := <-stream:
		if ok {
			t.Fatal("expected notification stream to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("expected hub to be closed on shutdown")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	hub := notify.NewHub(1, discardLogger())

	server := &http.Server{Addr: "bad addr"}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Worker:     newTestDispatcher(hub),
		Hub:        hub,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}
	if len(shutdowner.Options) != 1 {
		t.Fatalf("expected exit code option, got %d options", len(shutdowner.Options))
	}

	_ = hook.OnStop(context.Background())
}

func TestLifecycleRecorderRunsHooksInOrder(t *testing.T) {
	var calls []string
	hook := func(name string) fx.Hook {
		return fx.Hook{
			OnStart: func(context.Context) error { calls = append(calls, "start "+name); return nil },
			OnStop:  func(context.Context) error { calls = append(calls, "stop "+name); return nil },
		}
	}
	recorder := &testhelpers.LifecycleRecorder{}
	recorder.Append(hook("a"))
	recorder.Append(fx.Hook{})
	recorder.Append(hook("b"))

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := recorder.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	want := []string{"start a", "start b", "stop b", "stop a"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, calls)
		}
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}
