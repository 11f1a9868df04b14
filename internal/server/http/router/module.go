package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Facade handlers.StudioFacade
	Config *config.Config
	Logger *slog.Logger
}

func newEngine(p engineParams) *gin.Engine {
	gin.SetMode(modeFor(p.Config.LogLevel))
	return Setup(p.Facade, p.Logger)
}

func modeFor(level string) string {
	if level == "debug" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
