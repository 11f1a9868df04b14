package repository

import (
	"context"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

// OrderRepository describes persistence operations with design orders.
// Every mutation is applied atomically to a single order and returns its fresh state.
type OrderRepository interface {
	// Seed inserts orders that are not stored yet and leaves existing ones untouched.
	Seed(ctx context.Context, orders []model.Order) error
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	// List returns matching orders, newest first.
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	AddComment(ctx context.Context, id string, comment model.Comment) (*model.Order, error)
	AddAttachment(ctx context.Context, id string, kind model.AttachmentKind, file model.Attachment) (*model.Order, error)
}
