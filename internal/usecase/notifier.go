package usecase

import (
	"context"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

// Notifier delivers user facing notifications about order operations.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, model.Notification) {}

type actorKey struct{}

// WithActor records the identity performing an operation.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorFrom returns the identity recorded by WithActor.
func ActorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
