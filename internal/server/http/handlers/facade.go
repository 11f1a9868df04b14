package handlers

import (
	"context"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

// SessionFacade describes sign-in capabilities required by handlers.
type SessionFacade interface {
	SignIn(ctx context.Context, email, password string) (*model.Identity, string, error)
	SignInWithProvider(ctx context.Context) (*model.Identity, string, error)
	SignUp(ctx context.Context, name, email, password string) (*model.Identity, string, error)
	SignOut(ctx context.Context, token string) error
	CurrentIdentity(ctx context.Context, token string) (*model.Identity, error)
}

// OrderFacade encapsulates order operations available to every identity.
// Results are scoped to what viewer may see.
type OrderFacade interface {
	Orders(ctx context.Context, viewer model.Identity, filter model.OrderFilter) ([]model.Order, error)
	Order(ctx context.Context, viewer model.Identity, id string) (*model.Order, error)
	CreateOrder(ctx context.Context, viewer model.Identity, in model.NewOrder) (*model.Order, error)
	Dashboard(ctx context.Context, viewer model.Identity, filter model.OrderFilter) (*model.Dashboard, error)
}

// AdminFacade provides studio side order operations.
type AdminFacade interface {
	UpdateOrderStatus(ctx context.Context, actor model.Identity, id string, status model.OrderStatus) (*model.Order, error)
	AddOrderComment(ctx context.Context, actor model.Identity, id, text string) (*model.Order, error)
	AddDeliveryFile(ctx context.Context, actor model.Identity, id string, file model.Attachment) (*model.Order, error)
}

// UploadFacade hands out attachment storage locations.
type UploadFacade interface {
	PrepareUpload(ctx context.Context, name string, size int64, contentType string) (*model.UploadSlot, error)
	ResolveFile(ctx context.Context, key string) (string, error)
}

// NotificationFacade streams notifications addressed to an identity.
type NotificationFacade interface {
	Subscribe(recipientID string) (<-chan model.Notification, func())
}

// PlanFacade lists subscription tiers.
type PlanFacade interface {
	Plans() []model.Plan
}

// StudioFacade aggregates the full set of operations used across handlers.
type StudioFacade interface {
	SessionFacade
	OrderFacade
	AdminFacade
	UploadFacade
	NotificationFacade
	PlanFacade
}
