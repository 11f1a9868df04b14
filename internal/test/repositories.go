package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/domain/repository"
)

// SessionRepositoryStub keeps identities in a map unless a function override is set.
type SessionRepositoryStub struct {
	SaveFn   func(context.Context, string, model.Identity) error
	LoadFn   func(context.Context, string) (*model.Identity, error)
	DeleteFn func(context.Context, string) error

	mu      sync.Mutex
	Entries map[string]model.Identity
}

// NewSessionRepositoryStub constructs stub repository with initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Entries: make(map[string]model.Identity)}
}

// Save stores identity under key.
func (s *SessionRepositoryStub) Save(ctx context.Context, key string, identity model.Identity) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, key, identity)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Entries == nil {
		s.Entries = make(map[string]model.Identity)
	}
	s.Entries[key] = identity
	return nil
}

// Load returns stored identity or not found.
func (s *SessionRepositoryStub) Load(ctx context.Context, key string) (*model.Identity, error) {
	if s.LoadFn != nil {
		return s.LoadFn(ctx, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	identity, ok := s.Entries[key]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &identity, nil
}

// Delete removes key.
func (s *SessionRepositoryStub) Delete(ctx context.Context, key string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Entries, key)
	return nil
}

// Len reports the number of stored sessions.
func (s *SessionRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Entries)
}

// OrderRepositoryStub fails every call with Err unless a function override is set.
// Calls records invoked method names in order.
type OrderRepositoryStub struct {
	SeedFn          func(context.Context, []model.Order) error
	CreateFn        func(context.Context, model.Order) (*model.Order, error)
	GetFn           func(context.Context, string) (*model.Order, error)
	ListFn          func(context.Context, model.OrderFilter) ([]model.Order, error)
	UpdateStatusFn  func(context.Context, string, model.OrderStatus) (*model.Order, error)
	AddCommentFn    func(context.Context, string, model.Comment) (*model.Order, error)
	AddAttachmentFn func(context.Context, string, model.AttachmentKind, model.Attachment) (*model.Order, error)
	Err             error

	mu    sync.Mutex
	Calls []string
}

func (s *OrderRepositoryStub) record(name string) {
	s.mu.Lock()
	s.Calls = append(s.Calls, name)
	s.mu.Unlock()
}

// CallsTo counts invocations of the named method.
func (s *OrderRepositoryStub) CallsTo(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, c := range s.Calls {
		if c == name {
			count++
		}
	}
	return count
}

func (s *OrderRepositoryStub) err() error {
	if s.Err != nil {
		return s.Err
	}
	return domainErrors.ErrStorageUnavailable
}

func (s *OrderRepositoryStub) Seed(ctx context.Context, orders []model.Order) error {
	s.record("Seed")
	if s.SeedFn != nil {
		return s.SeedFn(ctx, orders)
	}
	return s.Err
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	s.record("Create")
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return nil, s.err()
}

func (s *OrderRepositoryStub) Get(ctx context.Context, id string) (*model.Order, error) {
	s.record("Get")
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return nil, s.err()
}

func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	s.record("List")
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return nil, s.err()
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	s.record("UpdateStatus")
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return nil, s.err()
}

func (s *OrderRepositoryStub) AddComment(ctx context.Context, id string, comment model.Comment) (*model.Order, error) {
	s.record("AddComment")
	if s.AddCommentFn != nil {
		return s.AddCommentFn(ctx, id, comment)
	}
	return nil, s.err()
}

func (s *OrderRepositoryStub) AddAttachment(ctx context.Context, id string, kind model.AttachmentKind, file model.Attachment) (*model.Order, error) {
	s.record("AddAttachment")
	if s.AddAttachmentFn != nil {
		return s.AddAttachmentFn(ctx, id, kind, file)
	}
	return nil, s.err()
}

var _ repository.SessionRepository = (*SessionRepositoryStub)(nil)
var _ repository.OrderRepository = (*OrderRepositoryStub)(nil)
