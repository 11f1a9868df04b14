package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/domain/repository"
	"github.com/polkiloo/tareffa/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newSessionUseCase,
	newOrderUseCase,
	NewUploadUseCase,
)

type sessionParams struct {
	fx.In

	Sessions repository.SessionRepository
	Hasher   auth.PasswordHasher
	Strategy auth.Strategy
	Config   *config.Config
}

func newSessionUseCase(p sessionParams) (*SessionUseCase, error) {
	return NewSessionUseCase(p.Sessions, p.Hasher, p.Strategy, AdminCredentials{
		Email:    p.Config.AdminEmail,
		Password: p.Config.AdminPassword,
	})
}

type orderParams struct {
	fx.In

	Orders   repository.OrderRepository
	Notifier Notifier `optional:"true"`
	Config   *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Notifier, p.Config.SeedSampleData)
}
