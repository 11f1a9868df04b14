package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
)

// sessionRecord is the flat JSON layout persisted for a signed in identity.
type sessionRecord struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Plan      model.PlanType `json:"plan"`
	Role      model.Role     `json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (r *sessionRepository) Save(ctx context.Context, key string, identity model.Identity) error {
	payload, err := json.Marshal(sessionRecord(identity))
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	const query = `INSERT INTO sessions (key, identity) VALUES ($1, $2)
                   ON CONFLICT (key) DO UPDATE SET identity = EXCLUDED.identity, created_at = NOW()`
	if _, err := r.storage.pool.Exec(ctx, query, key, payload); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Load(ctx context.Context, key string) (*model.Identity, error) {
	const query = `SELECT identity FROM sessions WHERE key=$1`
	var payload []byte
	if err := r.storage.pool.QueryRow(ctx, query, key).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	identity := model.Identity(record)
	return &identity, nil
}

func (r *sessionRepository) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM sessions WHERE key=$1`
	if _, err := r.storage.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
