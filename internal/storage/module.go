// Package storage selects the repository backend for the configured environment.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/domain/repository"
	"github.com/polkiloo/tareffa/internal/storage/memory"
	"github.com/polkiloo/tareffa/internal/storage/postgres"
)

// Module wires the repository factory and its repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.SessionRepository { return f.Sessions() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (repository.Factory, error) {
	storage, err := postgres.New(ctx, dsn, logger)
	if err != nil {
		return nil, err
	}
	return storage, nil
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory storage")
		return memory.New(), nil
	}
	p.Logger.Info("using postgres storage")
	return openPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

type closer interface {
	Close()
}

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if h, ok := factory.(healthChecker); ok {
				if err := h.HealthCheck(ctx); err != nil {
					return fmt.Errorf("storage health check: %w", err)
				}
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if c, ok := factory.(closer); ok {
				c.Close()
			}
			return nil
		},
	})
}
