package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/adapter/filestore"
	"github.com/polkiloo/tareffa/internal/adapter/webhook"
	"github.com/polkiloo/tareffa/internal/app"
	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/logger"
	"github.com/polkiloo/tareffa/internal/notify"
	"github.com/polkiloo/tareffa/internal/pkg/auth"
	"github.com/polkiloo/tareffa/internal/server/http/handlers"
	"github.com/polkiloo/tareffa/internal/server/http/router"
	"github.com/polkiloo/tareffa/internal/storage"
	"github.com/polkiloo/tareffa/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		webhook.Module,
		filestore.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(f *app.StudioFacade) handlers.StudioFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
