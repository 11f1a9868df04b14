package repository

import (
	"context"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

// SessionRepository is the durable key-value store holding the identity of each session.
// Values are rewritten wholesale on Save and removed wholesale on Delete.
type SessionRepository interface {
	Save(ctx context.Context, key string, identity model.Identity) error
	Load(ctx context.Context, key string) (*model.Identity, error)
	Delete(ctx context.Context, key string) error
}
