package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes configuration loader for fx graphs and reports the effective settings.
var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(logEffective),
)

func logEffective(cfg *Config, logger *slog.Logger) {
	storage := "memory"
	if cfg.DatabaseURI != "" {
		storage = "postgres"
	}
	logger.Info("configuration loaded",
		slog.String("addr", cfg.RunAddress),
		slog.String("storage", storage),
		slog.Bool("webhook", cfg.NotifyWebhookURL != ""),
		slog.Bool("attachments", cfg.S3.Enabled()),
		slog.Bool("seed", cfg.SeedSampleData),
		slog.Duration("session_ttl", cfg.SessionTTL),
	)
}
