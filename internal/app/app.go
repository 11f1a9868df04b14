package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/adapter/webhook"
	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/notify"
	"github.com/polkiloo/tareffa/internal/usecase"
	"github.com/polkiloo/tareffa/internal/worker"
)

const readHeaderTimeout = 10 * time.Second

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newStudioFacade,
		newHTTPServer,
		newWebhookDispatcher,
	),
	fx.Invoke(registerLifecycle),
)

type facadeParams struct {
	fx.In

	Sessions *usecase.SessionUseCase
	Orders   *usecase.OrderUseCase
	Uploads  *usecase.UploadUseCase
	Hub      *notify.Hub
}

func newStudioFacade(p facadeParams) *StudioFacade {
	return NewStudioFacade(p.Sessions, p.Orders, p.Uploads, p.Hub)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type workerParams struct {
	fx.In

	Hub    *notify.Hub
	Client webhook.Client
	Config *config.Config
	Logger *slog.Logger
}

func newWebhookDispatcher(p workerParams) *worker.WebhookDispatcher {
	return worker.NewWebhookDispatcher(
		p.Hub,
		p.Client,
		p.Config.NotifyWorkers,
		p.Config.NotifyBuffer,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.WebhookDispatcher
	Hub        *notify.Hub
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	// Notification streams never finish on their own; closing the hub ends them.
	p.Server.RegisterOnShutdown(p.Hub.Close)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting tareffa", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			err := p.Server.Shutdown(shutdownCtx)
			p.Worker.Stop()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("tareffa stopped")
			return nil
		},
	})
}
