package usecase

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/tareffa/internal/config"
	"github.com/polkiloo/tareffa/internal/domain/repository"
	"github.com/polkiloo/tareffa/internal/pkg/auth"
	"github.com/polkiloo/tareffa/internal/storage/memory"
	testhelpers "github.com/polkiloo/tareffa/internal/test"
)

func TestModuleProvidesUseCases(t *testing.T) {
	store := memory.New()
	var (
		sessions *SessionUseCase
		orders   *OrderUseCase
		uploads  *UploadUseCase
	)
	app := fxtest.New(t,
		fx.Supply(&config.Config{AdminEmail: "admin@tareffa.com", AdminPassword: "password", SeedSampleData: true}),
		fx.Provide(
			func() repository.SessionRepository { return store.Sessions() },
			func() repository.OrderRepository { return store.Orders() },
			func() auth.PasswordHasher { return testhelpers.HasherStub{} },
			func() auth.Strategy { return testhelpers.StrategyStub{} },
			func() Presigner { return testhelpers.PresignerStub{} },
		),
		Module,
		fx.Populate(&sessions, &orders, &uploads),
	)
	app.RequireStart()
	defer app.RequireStop()

	if sessions == nil || orders == nil || uploads == nil {
		t.Fatal("expected use cases to be provided")
	}
	if _, ok := orders.notifier.(NopNotifier); !ok {
		t.Fatalf("expected nop notifier without a provided one, got %T", orders.notifier)
	}
	if orders.seeded {
		t.Fatal("expected seeding to be pending")
	}
}

func TestModuleDisablesSeeding(t *testing.T) {
	var orders *OrderUseCase
	app := fxtest.New(t,
		fx.Supply(&config.Config{}),
		fx.Provide(
			func() repository.SessionRepository { return testhelpers.NewSessionRepositoryStub() },
			func() repository.OrderRepository { return &testhelpers.OrderRepositoryStub{} },
			func() auth.PasswordHasher { return testhelpers.HasherStub{} },
			func() auth.Strategy { return testhelpers.StrategyStub{} },
			func() Presigner { return testhelpers.PresignerStub{} },
		),
		Module,
		fx.Populate(&orders),
	)
	app.RequireStart()
	defer app.RequireStop()

	if !orders.seeded {
		t.Fatal("expected seeding to be skipped")
	}
}
