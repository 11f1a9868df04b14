package filestore

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/usecase"
)

// Module exposes the attachment presigner to fx graph.
var Module = fx.Provide(newPresigner)

type presignerParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newPresigner(p presignerParams) (usecase.Presigner, error) {
	if !p.Config.S3.Enabled() {
		p.Logger.Info("attachment storage disabled")
		return Disabled{}, nil
	}
	presigner, err := NewS3Presigner(p.Ctx, p.Config.S3)
	if err != nil {
		return nil, err
	}
	return presigner, nil
}
