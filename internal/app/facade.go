package app

import (
	"context"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/usecase"
)

// NotificationSubscriber exposes per identity notification streams.
type NotificationSubscriber interface {
	Subscribe(recipientID string) (<-chan model.Notification, func())
}

// StudioFacade combines use cases behind the HTTP surface. Clients only ever see
// their own orders; administrators see everything.
type StudioFacade struct {
	sessions      *usecase.SessionUseCase
	orders        *usecase.OrderUseCase
	uploads       *usecase.UploadUseCase
	notifications NotificationSubscriber
}

func NewStudioFacade(sessions *usecase.SessionUseCase, orders *usecase.OrderUseCase, uploads *usecase.UploadUseCase, notifications NotificationSubscriber) *StudioFacade {
	return &StudioFacade{sessions: sessions, orders: orders, uploads: uploads, notifications: notifications}
}

func (f *StudioFacade) SignIn(ctx context.Context, email, password string) (*model.Identity, string, error) {
	return f.sessions.SignIn(ctx, email, password)
}

func (f *StudioFacade) SignInWithProvider(ctx context.Context) (*model.Identity, string, error) {
	return f.sessions.SignInWithProvider(ctx)
}

func (f *StudioFacade) SignUp(ctx context.Context, name, email, password string) (*model.Identity, string, error) {
	return f.sessions.SignUp(ctx, name, email, password)
}

func (f *StudioFacade) SignOut(ctx context.Context, token string) error {
	return f.sessions.SignOut(ctx, token)
}

func (f *StudioFacade) CurrentIdentity(ctx context.Context, token string) (*model.Identity, error) {
	return f.sessions.Current(ctx, token)
}

func (f *StudioFacade) Orders(ctx context.Context, viewer model.Identity, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(usecase.WithActor(ctx, viewer.ID), scope(viewer, filter))
}

func (f *StudioFacade) Order(ctx context.Context, viewer model.Identity, id string) (*model.Order, error) {
	order, err := f.orders.Get(usecase.WithActor(ctx, viewer.ID), id)
	if err != nil {
		return nil, err
	}
	if !viewer.IsAdmin() && order.ClientID != viewer.ID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

func (f *StudioFacade) CreateOrder(ctx context.Context, viewer model.Identity, in model.NewOrder) (*model.Order, error) {
	in.ClientID = viewer.ID
	return f.orders.Create(usecase.WithActor(ctx, viewer.ID), in)
}

func (f *StudioFacade) Dashboard(ctx context.Context, viewer model.Identity, filter model.OrderFilter) (*model.Dashboard, error) {
	return f.orders.Dashboard(usecase.WithActor(ctx, viewer.ID), scope(viewer, filter))
}

func (f *StudioFacade) UpdateOrderStatus(ctx context.Context, actor model.Identity, id string, status model.OrderStatus) (*model.Order, error) {
	if !actor.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}
	return f.orders.UpdateStatus(usecase.WithActor(ctx, actor.ID), id, status)
}

func (f *StudioFacade) AddOrderComment(ctx context.Context, actor model.Identity, id, text string) (*model.Order, error) {
	if !actor.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}
	return f.orders.AddComment(usecase.WithActor(ctx, actor.ID), id, text)
}

func (f *StudioFacade) AddDeliveryFile(ctx context.Context, actor model.Identity, id string, file model.Attachment) (*model.Order, error) {
	if !actor.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}
	return f.orders.AddDeliveryFile(usecase.WithActor(ctx, actor.ID), id, file)
}

func (f *StudioFacade) PrepareUpload(ctx context.Context, name string, size int64, contentType string) (*model.UploadSlot, error) {
	return f.uploads.Prepare(ctx, name, size, contentType)
}

func (f *StudioFacade) ResolveFile(ctx context.Context, key string) (string, error) {
	return f.uploads.ResolveDownload(ctx, key)
}

func (f *StudioFacade) Subscribe(recipientID string) (<-chan model.Notification, func()) {
	return f.notifications.Subscribe(recipientID)
}

func (f *StudioFacade) Plans() []model.Plan {
	return usecase.PlanCatalog()
}

// scope narrows a client's view to their own orders.
func scope(viewer model.Identity, filter model.OrderFilter) model.OrderFilter {
	if !viewer.IsAdmin() {
		filter.ClientID = viewer.ID
	}
	return filter
}
