package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/domain/repository"
	"github.com/polkiloo/tareffa/internal/pkg/ids"
)

const recentOrdersLimit = 5

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	notifier Notifier
	now      func() time.Time

	seedMu sync.Mutex
	seeded bool
}

// NewOrderUseCase constructs OrderUseCase. When seed is false the sample orders
// are never written.
func NewOrderUseCase(orders repository.OrderRepository, notifier Notifier, seed bool) *OrderUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &OrderUseCase{orders: orders, notifier: notifier, now: time.Now, seeded: !seed}
}

// List returns orders newest first, seeding sample data on first use.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if err := u.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return u.orders.List(ctx, filter)
}

// Get returns a single order.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	if err := u.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return u.orders.Get(ctx, id)
}

// Create validates input and stores a new RECEIVED order.
func (u *OrderUseCase) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	order, err := u.create(ctx, in)
	if err != nil {
		u.fail(ctx, in.ClientID, "", "Failed to create order")
		return nil, err
	}
	u.notify(ctx, order.ClientID, order.ID, "Order Created", "Your order has been successfully created")
	return order, nil
}

func (u *OrderUseCase) create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domainErrors.ErrInvalidOrder)
	}
	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = model.ServiceOther
	}
	if !serviceType.Valid() {
		return nil, domainErrors.ErrInvalidServiceType
	}
	if err := u.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	now := u.now()
	files := make([]model.Attachment, 0, len(in.Files))
	for _, f := range in.Files {
		files = append(files, u.completeAttachment(f, ids.PrefixFile))
	}
	order := model.Order{
		ID:            ids.New(ids.PrefixOrder),
		Title:         title,
		Description:   in.Description,
		ServiceType:   serviceType,
		Status:        model.OrderStatusReceived,
		ClientID:      in.ClientID,
		CreatedAt:     now,
		Files:         files,
		DeliveryFiles: []model.Attachment{},
		AdminComments: []model.Comment{},
		BriefingData:  in.BriefingData,
	}
	order.Normalize()
	return u.orders.Create(ctx, order)
}

// UpdateStatus overwrites the order status. Any known status may follow any other.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	order, err := u.updateStatus(ctx, id, status)
	if err != nil {
		u.fail(ctx, "", id, "Failed to update order status")
		return nil, err
	}
	u.notify(ctx, order.ClientID, order.ID, "Status Updated", fmt.Sprintf("Order status changed to %s", status))
	return order, nil
}

func (u *OrderUseCase) updateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	if err := u.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return u.orders.UpdateStatus(ctx, id, status)
}

// AddComment appends a studio comment. Comments are always authored by the administrator.
func (u *OrderUseCase) AddComment(ctx context.Context, orderID, text string) (*model.Order, error) {
	order, err := u.addComment(ctx, orderID, text)
	if err != nil {
		u.fail(ctx, "", orderID, "Failed to add comment")
		return nil, err
	}
	return order, nil
}

func (u *OrderUseCase) addComment(ctx context.Context, orderID, text string) (*model.Order, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainErrors.ErrInvalidComment
	}
	if err := u.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	comment := model.Comment{
		ID:        ids.New(ids.PrefixComment),
		Text:      text,
		CreatedAt: u.now(),
		UserID:    model.AdminIdentityID,
	}
	return u.orders.AddComment(ctx, orderID, comment)
}

// AddDeliveryFile appends produced work to an order.
func (u *OrderUseCase) AddDeliveryFile(ctx context.Context, orderID string, file model.Attachment) (*model.Order, error) {
	order, err := u.addDeliveryFile(ctx, orderID, file)
	if err != nil {
		u.fail(ctx, "", orderID, "Failed to add delivery file")
		return nil, err
	}
	u.notify(ctx, order.ClientID, order.ID, "File Added", "Delivery file has been added to the order")
	return order, nil
}

func (u *OrderUseCase) addDeliveryFile(ctx context.Context, orderID string, file model.Attachment) (*model.Order, error) {
	if strings.TrimSpace(file.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrInvalidAttachment)
	}
	if err := u.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return u.orders.AddAttachment(ctx, orderID, model.AttachmentDelivery, u.completeAttachment(file, ids.PrefixDelivery))
}

// Dashboard summarizes orders matching filter.
func (u *OrderUseCase) Dashboard(ctx context.Context, filter model.OrderFilter) (*model.Dashboard, error) {
	orders, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	dashboard := &model.Dashboard{
		Total:    len(orders),
		ByStatus: make(map[model.OrderStatus]int, len(model.OrderStatuses)),
		Recent:   []model.Order{},
	}
	for _, status := range model.OrderStatuses {
		dashboard.ByStatus[status] = 0
	}
	for _, o := range orders {
		dashboard.ByStatus[o.Status]++
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if len(orders) > recentOrdersLimit {
		orders = orders[:recentOrdersLimit]
	}
	dashboard.Recent = append(dashboard.Recent, orders...)
	return dashboard, nil
}

func (u *OrderUseCase) ensureSeeded(ctx context.Context) error {
	u.seedMu.Lock()
	defer u.seedMu.Unlock()
	if u.seeded {
		return nil
	}
	if err := u.orders.Seed(ctx, SampleOrders(u.now())); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	u.seeded = true
	return nil
}

func (u *OrderUseCase) completeAttachment(f model.Attachment, prefix string) model.Attachment {
	if f.ID == "" {
		f.ID = ids.New(prefix)
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = u.now()
	}
	return f
}

func (u *OrderUseCase) notify(ctx context.Context, ownerID, orderID, title, description string) {
	u.notifier.Notify(ctx, u.notification(ctx, ownerID, orderID, title, description, model.NotificationDefault))
}

func (u *OrderUseCase) fail(ctx context.Context, ownerID, orderID, description string) {
	u.notifier.Notify(ctx, u.notification(ctx, ownerID, orderID, "Error", description, model.NotificationDestructive))
}

// notification addresses the acting identity, falling back to the order owner.
func (u *OrderUseCase) notification(ctx context.Context, ownerID, orderID, title, description string, variant model.NotificationVariant) model.Notification {
	recipient := ActorFrom(ctx)
	if recipient == "" {
		recipient = ownerID
	}
	return model.Notification{
		ID:          ids.New(ids.PrefixNotice),
		Title:       title,
		Description: description,
		Variant:     variant,
		RecipientID: recipient,
		OrderID:     orderID,
		CreatedAt:   u.now(),
	}
}
