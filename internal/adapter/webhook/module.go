package webhook

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/config"
)

// Module exposes webhook client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.NotifyWebhookURL == "" {
		return Disabled{}, nil
	}
	client, err := NewHTTPClient(p.Config.NotifyWebhookURL, p.Logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
