// Package memory keeps sessions and orders in process memory. It backs the
// service when no database is configured.
package memory

import (
	"context"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/domain/repository"
)

// Storage is a mutex guarded repository factory.
type Storage struct {
	sessions *sessionRepository
	orders   *orderRepository
}

var _ repository.Factory = (*Storage)(nil)

// New creates empty storage.
func New() *Storage {
	return &Storage{
		sessions: &sessionRepository{items: map[string]model.Identity{}},
		orders:   &orderRepository{index: map[string]int{}},
	}
}

func (s *Storage) Sessions() repository.SessionRepository { return s.sessions }

func (s *Storage) Orders() repository.OrderRepository { return s.orders }

// Close is a no-op kept for lifecycle symmetry with database storage.
func (s *Storage) Close() {}

type sessionRepository struct {
	mu    sync.RWMutex
	items map[string]model.Identity
}

func (r *sessionRepository) Save(ctx context.Context, key string, identity model.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = identity
	return nil
}

func (r *sessionRepository) Load(ctx context.Context, key string) (*model.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.items[key]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &identity, nil
}

func (r *sessionRepository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, key)
	return nil
}

// orderRepository stores orders newest first.
type orderRepository struct {
	mu     sync.RWMutex
	orders []model.Order
	index  map[string]int
}

func (r *orderRepository) Seed(ctx context.Context, orders []model.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range orders {
		if _, exists := r.index[order.ID]; exists {
			continue
		}
		r.orders = append(r.orders, cloneOrder(order))
		r.index[order.ID] = len(r.orders) - 1
	}
	return nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := cloneOrder(order)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]model.Order{stored}, r.orders...)
	r.reindex()
	created := cloneOrder(stored)
	return &created, nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order := cloneOrder(r.orders[i])
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []model.Order{}
	for _, order := range r.orders {
		if matches(order, filter) {
			result = append(result, cloneOrder(order))
		}
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return r.mutate(ctx, id, func(o *model.Order) {
		o.Status = status
	})
}

func (r *orderRepository) AddComment(ctx context.Context, id string, comment model.Comment) (*model.Order, error) {
	return r.mutate(ctx, id, func(o *model.Order) {
		o.AdminComments = append(o.AdminComments, comment)
	})
}

func (r *orderRepository) AddAttachment(ctx context.Context, id string, kind model.AttachmentKind, file model.Attachment) (*model.Order, error) {
	return r.mutate(ctx, id, func(o *model.Order) {
		if kind == model.AttachmentDelivery {
			o.DeliveryFiles = append(o.DeliveryFiles, file)
			return
		}
		o.Files = append(o.Files, file)
	})
}

func (r *orderRepository) mutate(ctx context.Context, id string, fn func(*model.Order)) (*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	fn(&r.orders[i])
	updated := cloneOrder(r.orders[i])
	return &updated, nil
}

func (r *orderRepository) reindex() {
	for i, order := range r.orders {
		r.index[order.ID] = i
	}
}

func matches(order model.Order, filter model.OrderFilter) bool {
	if filter.ClientID != "" && order.ClientID != filter.ClientID {
		return false
	}
	if filter.Status != "" && order.Status != filter.Status {
		return false
	}
	if filter.ServiceType != "" && order.ServiceType != filter.ServiceType {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		return strings.Contains(strings.ToLower(order.Title), search) ||
			strings.Contains(strings.ToLower(order.Description), search)
	}
	return true
}

// cloneOrder copies collections so callers never share memory with the store.
func cloneOrder(o model.Order) model.Order {
	clone := o
	clone.Files = append([]model.Attachment{}, o.Files...)
	clone.DeliveryFiles = append([]model.Attachment{}, o.DeliveryFiles...)
	clone.AdminComments = append([]model.Comment{}, o.AdminComments...)
	clone.BriefingData = cloneBriefing(o.BriefingData)
	if o.DeliveryDate != nil {
		d := *o.DeliveryDate
		clone.DeliveryDate = &d
	}
	return clone
}

func cloneBriefing(data map[string]any) map[string]any {
	clone := make(map[string]any, len(data))
	for k, v := range data {
		clone[k] = cloneValue(v)
	}
	return clone
}

// cloneValue copies the container types produced by JSON decoding; scalars are immutable.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneBriefing(t)
	case []any:
		clone := make([]any, len(t))
		for i, item := range t {
			clone[i] = cloneValue(item)
		}
		return clone
	case map[string]string:
		clone := make(map[string]string, len(t))
		for k, item := range t {
			clone[k] = item
		}
		return clone
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
