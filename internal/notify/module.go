package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/usecase"
)

// Module provides the notification hub both as itself and as the use case notifier.
var Module = fx.Options(
	fx.Provide(newHub),
	fx.Provide(func(h *Hub) usecase.Notifier { return h }),
)

type hubParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newHub(p hubParams) *Hub {
	return NewHub(p.Config.NotifyBuffer, p.Logger)
}
