package test

import (
	"context"
	"time"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

// StudioFacadeStub provides controllable behaviour for every HTTP facade.
// Methods without an override return canned data.
type StudioFacadeStub struct {
	SignInFn             func(context.Context, string, string) (*model.Identity, string, error)
	SignInWithProviderFn func(context.Context) (*model.Identity, string, error)
	SignUpFn             func(context.Context, string, string, string) (*model.Identity, string, error)
	SignOutFn            func(context.Context, string) error
	CurrentIdentityFn    func(context.Context, string) (*model.Identity, error)

	OrdersFn      func(context.Context, model.Identity, model.OrderFilter) ([]model.Order, error)
	OrderFn       func(context.Context, model.Identity, string) (*model.Order, error)
	CreateOrderFn func(context.Context, model.Identity, model.NewOrder) (*model.Order, error)
	DashboardFn   func(context.Context, model.Identity, model.OrderFilter) (*model.Dashboard, error)

	UpdateOrderStatusFn func(context.Context, model.Identity, string, model.OrderStatus) (*model.Order, error)
	AddOrderCommentFn   func(context.Context, model.Identity, string, string) (*model.Order, error)
	AddDeliveryFileFn   func(context.Context, model.Identity, string, model.Attachment) (*model.Order, error)

	PrepareUploadFn func(context.Context, string, int64, string) (*model.UploadSlot, error)
	ResolveFileFn   func(context.Context, string) (string, error)

	SubscribeFn func(string) (<-chan model.Notification, func())
	PlansFn     func() []model.Plan
}

// StubOrder returns a minimal order used as canned facade output.
func StubOrder(id string) *model.Order {
	order := &model.Order{
		ID:          id,
		Title:       "Stub order",
		ServiceType: model.ServiceLogo,
		Status:      model.OrderStatusReceived,
		ClientID:    model.GenericIdentityID,
		CreatedAt:   time.Unix(0, 0).UTC(),
	}
	order.Normalize()
	return order
}

func (s StudioFacadeStub) SignIn(ctx context.Context, email, password string) (*model.Identity, string, error) {
	if s.SignInFn != nil {
		return s.SignInFn(ctx, email, password)
	}
	identity := model.GenericIdentity(time.Unix(0, 0))
	return &identity, "token", nil
}

func (s StudioFacadeStub) SignInWithProvider(ctx context.Context) (*model.Identity, string, error) {
	if s.SignInWithProviderFn != nil {
		return s.SignInWithProviderFn(ctx)
	}
	identity := model.GenericIdentity(time.Unix(0, 0))
	return &identity, "token", nil
}

func (s StudioFacadeStub) SignUp(ctx context.Context, name, email, password string) (*model.Identity, string, error) {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, name, email, password)
	}
	identity := model.GenericIdentity(time.Unix(0, 0))
	identity.Name, identity.Email = name, email
	return &identity, "token", nil
}

func (s StudioFacadeStub) SignOut(ctx context.Context, token string) error {
	if s.SignOutFn != nil {
		return s.SignOutFn(ctx, token)
	}
	return nil
}

// CurrentIdentity resolves "admin" to the administrator and any other token to the generic client.
func (s StudioFacadeStub) CurrentIdentity(ctx context.Context, token string) (*model.Identity, error) {
	if s.CurrentIdentityFn != nil {
		return s.CurrentIdentityFn(ctx, token)
	}
	identity := model.GenericIdentity(time.Unix(0, 0))
	if token == "admin" {
		identity = model.AdminIdentity(time.Unix(0, 0))
	}
	return &identity, nil
}

func (s StudioFacadeStub) Orders(ctx context.Context, viewer model.Identity, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, viewer, filter)
	}
	return []model.Order{*StubOrder("order-123")}, nil
}

func (s StudioFacadeStub) Order(ctx context.Context, viewer model.Identity, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, viewer, id)
	}
	return StubOrder(id), nil
}

func (s StudioFacadeStub) CreateOrder(ctx context.Context, viewer model.Identity, in model.NewOrder) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, viewer, in)
	}
	order := StubOrder("order-new")
	order.Title = in.Title
	order.ClientID = viewer.ID
	return order, nil
}

func (s StudioFacadeStub) Dashboard(ctx context.Context, viewer model.Identity, filter model.OrderFilter) (*model.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, viewer, filter)
	}
	return &model.Dashboard{
		Total:    1,
		ByStatus: map[model.OrderStatus]int{model.OrderStatusReceived: 1},
		Recent:   []model.Order{*StubOrder("order-123")},
	}, nil
}

func (s StudioFacadeStub) UpdateOrderStatus(ctx context.Context, actor model.Identity, id string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, actor, id, status)
	}
	order := StubOrder(id)
	order.Status = status
	return order, nil
}

func (s StudioFacadeStub) AddOrderComment(ctx context.Context, actor model.Identity, id, text string) (*model.Order, error) {
	if s.AddOrderCommentFn != nil {
		return s.AddOrderCommentFn(ctx, actor, id, text)
	}
	order := StubOrder(id)
	order.AdminComments = append(order.AdminComments, model.Comment{ID: "comment-1", Text: text, UserID: actor.ID})
	return order, nil
}

func (s StudioFacadeStub) AddDeliveryFile(ctx context.Context, actor model.Identity, id string, file model.Attachment) (*model.Order, error) {
	if s.AddDeliveryFileFn != nil {
		return s.AddDeliveryFileFn(ctx, actor, id, file)
	}
	order := StubOrder(id)
	order.DeliveryFiles = append(order.DeliveryFiles, file)
	return order, nil
}

func (s StudioFacadeStub) PrepareUpload(ctx context.Context, name string, size int64, contentType string) (*model.UploadSlot, error) {
	if s.PrepareUploadFn != nil {
		return s.PrepareUploadFn(ctx, name, size, contentType)
	}
	return &model.UploadSlot{
		Key:        "uploads/file-1/" + name,
		UploadURL:  "https://storage.test/put/uploads/file-1/" + name,
		Attachment: model.Attachment{ID: "file-1", Name: name, URL: "/api/files/uploads/file-1/" + name, Size: size, Type: contentType},
	}, nil
}

func (s StudioFacadeStub) ResolveFile(ctx context.Context, key string) (string, error) {
	if s.ResolveFileFn != nil {
		return s.ResolveFileFn(ctx, key)
	}
	return "https://storage.test/get" + key, nil
}

// Subscribe returns a closed channel unless overridden.
func (s StudioFacadeStub) Subscribe(recipientID string) (<-chan model.Notification, func()) {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(recipientID)
	}
	ch := make(chan model.Notification)
	close(ch)
	return ch, func() {}
}

func (s StudioFacadeStub) Plans() []model.Plan {
	if s.PlansFn != nil {
		return s.PlansFn()
	}
	return []model.Plan{{Name: model.PlanBasic, Price: "$99", Features: []string{"1 design"}}}
}
