package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/storage/memory"
	testhelpers "github.com/polkiloo/tareffa/internal/test"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestOrderUseCase(t *testing.T) (*OrderUseCase, *testhelpers.NotifierRecorder) {
	t.Helper()
	notifier := &testhelpers.NotifierRecorder{}
	uc := NewOrderUseCase(memory.New().Orders(), notifier, true)
	uc.now = func() time.Time { return fixedNow }
	return uc, notifier
}

func TestOrderUseCaseListSeedsSampleOrders(t *testing.T) {
	uc, _ := newTestOrderUseCase(t)
	orders, err := uc.List(context.Background(), model.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-123", orders[0].ID)
	assert.Equal(t, "order-456", orders[1].ID)

	assert.Equal(t, model.OrderStatusInProduction, orders[0].Status)
	assert.Nil(t, orders[0].DeliveryDate)
	require.Len(t, orders[0].AdminComments, 1)
	assert.Equal(t, model.AdminIdentityID, orders[0].AdminComments[0].UserID)

	assert.Equal(t, model.OrderStatusDelivered, orders[1].Status)
	require.NotNil(t, orders[1].DeliveryDate)
	assert.Equal(t, fixedNow.Add(-72*time.Hour), *orders[1].DeliveryDate)
	require.Len(t, orders[1].DeliveryFiles, 1)

	again, err := uc.List(context.Background(), model.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

func TestOrderUseCaseWithoutSeeding(t *testing.T) {
	uc := NewOrderUseCase(memory.New().Orders(), nil, false)
	orders, err := uc.List(context.Background(), model.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderUseCaseSeedingRetriesAfterFailure(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	seedErr := errors.New("db down")
	repo.SeedFn = func(context.Context, []model.Order) error {
		if repo.CallsTo("Seed") == 1 {
			return seedErr
		}
		return nil
	}
	repo.ListFn = func(context.Context, model.OrderFilter) ([]model.Order, error) {
		return []model.Order{}, nil
	}
	uc := NewOrderUseCase(repo, nil, true)

	_, err := uc.List(context.Background(), model.OrderFilter{})
	assert.ErrorIs(t, err, seedErr)

	_, err = uc.List(context.Background(), model.OrderFilter{})
	require.NoError(t, err)
	_, err = uc.List(context.Background(), model.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.CallsTo("Seed"))
}

func TestOrderUseCaseCreateDefaults(t *testing.T) {
	uc, notifier := newTestOrderUseCase(t)
	order, err := uc.Create(context.Background(), model.NewOrder{Title: "  Logo  ", ServiceType: model.ServiceLogo, ClientID: model.GenericIdentityID})
	require.NoError(t, err)

	assert.Regexp(t, `^order-`, order.ID)
	assert.Equal(t, "Logo", order.Title)
	assert.Equal(t, model.OrderStatusReceived, order.Status)
	assert.Equal(t, fixedNow, order.CreatedAt)
	assert.Nil(t, order.DeliveryDate)
	assert.NotNil(t, order.BriefingData)
	assert.Empty(t, order.BriefingData)
	assert.NotNil(t, order.Files)
	assert.Empty(t, order.Files)
	assert.NotNil(t, order.DeliveryFiles)
	assert.Empty(t, order.DeliveryFiles)
	assert.NotNil(t, order.AdminComments)
	assert.Empty(t, order.AdminComments)

	n, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Order Created", n.Title)
	assert.Equal(t, "Your order has been successfully created", n.Description)
	assert.Equal(t, model.NotificationDefault, n.Variant)
	assert.Equal(t, model.GenericIdentityID, n.RecipientID)
	assert.Equal(t, order.ID, n.OrderID)

	orders, err := uc.List(context.Background(), model.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderUseCaseCreateFillsAttachments(t *testing.T) {
	uc, _ := newTestOrderUseCase(t)
	order, err := uc.Create(context.Background(), model.NewOrder{
		Title: "Website",
		Files: []model.Attachment{{Name: "brief.pdf", URL: "/api/files/uploads/x/brief.pdf"}, {ID: "file-keep", Name: "keep.png"}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.ServiceOther, order.ServiceType)
	require.Len(t, order.Files, 2)
	assert.Regexp(t, `^file-`, order.Files[0].ID)
	assert.Equal(t, fixedNow, order.Files[0].CreatedAt)
	assert.Equal(t, "file-keep", order.Files[1].ID)
}

func TestOrderUseCaseCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   model.NewOrder
		want error
	}{
		{name: "blank title", in: model.NewOrder{Title: "   "}, want: domainErrors.ErrInvalidOrder},
		{name: "unknown service", in: model.NewOrder{Title: "x", ServiceType: "BAKERY"}, want: domainErrors.ErrInvalidServiceType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, notifier := newTestOrderUseCase(t)
			_, err := uc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)

			n, ok := notifier.Last()
			require.True(t, ok)
			assert.Equal(t, "Error", n.Title)
			assert.Equal(t, "Failed to create order", n.Description)
			assert.Equal(t, model.NotificationDestructive, n.Variant)
		})
	}
}

func TestOrderUseCaseCreatePropagatesStorageError(t *testing.T) {
	storageErr := errors.New("insert failed")
	repo := &testhelpers.OrderRepositoryStub{Err: storageErr}
	notifier := &testhelpers.NotifierRecorder{}
	uc := NewOrderUseCase(repo, notifier, false)

	_, err := uc.Create(context.Background(), model.NewOrder{Title: "x"})
	assert.ErrorIs(t, err, storageErr)
	require.Len(t, notifier.Notifications(), 1)
	assert.Equal(t, model.NotificationDestructive, notifier.Notifications()[0].Variant)
}

func TestOrderUseCaseGet(t *testing.T) {
	uc, _ := newTestOrderUseCase(t)
	order, err := uc.Get(context.Background(), "order-456")
	require.NoError(t, err)
	assert.Equal(t, "Logo Redesign", order.Title)

	_, err = uc.Get(context.Background(), "order-999")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestOrderUseCaseUpdateStatusAnyTransition(t *testing.T) {
	uc, notifier := newTestOrderUseCase(t)
	ctx := context.Background()
	statuses := append(append([]model.OrderStatus{}, model.OrderStatuses...), model.OrderStatusReceived)
	for _, status := range statuses {
		order, err := uc.UpdateStatus(ctx, "order-456", status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)

		stored, err := uc.Get(ctx, "order-456")
		require.NoError(t, err)
		assert.Equal(t, status, stored.Status)

		n, ok := notifier.Last()
		require.True(t, ok)
		assert.Equal(t, "Status Updated", n.Title)
		assert.Equal(t, fmt.Sprintf("Order status changed to %s", status), n.Description)
	}
}

func TestOrderUseCaseUpdateStatusFailures(t *testing.T) {
	uc, notifier := newTestOrderUseCase(t)
	_, err := uc.UpdateStatus(context.Background(), "order-123", "LOST")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidStatus)

	_, err = uc.UpdateStatus(context.Background(), "order-999", model.OrderStatusDelivered)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	n, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Failed to update order status", n.Description)
	assert.Equal(t, "order-999", n.OrderID)
}

func TestOrderUseCaseAddComment(t *testing.T) {
	uc, notifier := newTestOrderUseCase(t)
	ctx := WithActor(context.Background(), model.AdminIdentityID)

	order, err := uc.AddComment(ctx, "order-123", "First draft attached")
	require.NoError(t, err)
	require.Len(t, order.AdminComments, 2)
	last := order.AdminComments[1]
	assert.Equal(t, "First draft attached", last.Text)
	assert.Equal(t, model.AdminIdentityID, last.UserID)
	assert.Equal(t, fixedNow, last.CreatedAt)
	assert.Regexp(t, `^comment-`, last.ID)
	assert.Empty(t, notifier.Notifications())

	stored, err := uc.Get(ctx, "order-123")
	require.NoError(t, err)
	assert.Len(t, stored.AdminComments, 2)

	_, err = uc.AddComment(ctx, "order-123", "  ")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidComment)
	_, err = uc.AddComment(ctx, "order-999", "hello")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	n, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Failed to add comment", n.Description)
	assert.Equal(t, model.AdminIdentityID, n.RecipientID)
}

func TestOrderUseCaseAddDeliveryFile(t *testing.T) {
	uc, notifier := newTestOrderUseCase(t)
	ctx := context.Background()

	order, err := uc.AddDeliveryFile(ctx, "order-123", model.Attachment{Name: "draft.png", Size: 10, Type: "image/png"})
	require.NoError(t, err)
	require.Len(t, order.DeliveryFiles, 1)
	assert.Regexp(t, `^delivery-`, order.DeliveryFiles[0].ID)
	assert.Equal(t, fixedNow, order.DeliveryFiles[0].CreatedAt)
	assert.Equal(t, model.OrderStatusInProduction, order.Status)
	assert.Nil(t, order.DeliveryDate)

	n, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "File Added", n.Title)
	assert.Equal(t, "Delivery file has been added to the order", n.Description)
	assert.Equal(t, model.GenericIdentityID, n.RecipientID)

	_, err = uc.AddDeliveryFile(ctx, "order-123", model.Attachment{})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidAttachment)
	_, err = uc.AddDeliveryFile(ctx, "order-999", model.Attachment{Name: "x"})
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	n, _ = notifier.Last()
	assert.Equal(t, "Failed to add delivery file", n.Description)
}

func TestOrderUseCaseListFilters(t *testing.T) {
	uc, _ := newTestOrderUseCase(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, model.NewOrder{Title: "Brand book", ServiceType: model.ServiceBranding, ClientID: "user-999"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter model.OrderFilter
		want   int
	}{
		{name: "all", filter: model.OrderFilter{}, want: 3},
		{name: "client", filter: model.OrderFilter{ClientID: model.GenericIdentityID}, want: 2},
		{name: "status", filter: model.OrderFilter{Status: model.OrderStatusDelivered}, want: 1},
		{name: "service type", filter: model.OrderFilter{ServiceType: model.ServiceBranding}, want: 1},
		{name: "search title", filter: model.OrderFilter{Search: "instagram"}, want: 1},
		{name: "search description", filter: model.OrderFilter{Search: "MODERN UPDATE"}, want: 1},
		{name: "no match", filter: model.OrderFilter{Search: "zzz"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := uc.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, orders, tt.want)
		})
	}
}

func TestOrderUseCaseDashboard(t *testing.T) {
	uc, _ := newTestOrderUseCase(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		uc.now = func() time.Time { return fixedNow.Add(time.Duration(i+1) * time.Hour) }
		_, err := uc.Create(ctx, model.NewOrder{Title: fmt.Sprintf("Post %d", i), ServiceType: model.ServicePost})
		require.NoError(t, err)
	}

	dashboard, err := uc.Dashboard(ctx, model.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 7, dashboard.Total)
	assert.Equal(t, 5, dashboard.ByStatus[model.OrderStatusReceived])
	assert.Equal(t, 1, dashboard.ByStatus[model.OrderStatusInProduction])
	assert.Equal(t, 1, dashboard.ByStatus[model.OrderStatusDelivered])
	assert.Equal(t, 0, dashboard.ByStatus[model.OrderStatusRejected])
	assert.Len(t, dashboard.ByStatus, len(model.OrderStatuses))
	require.Len(t, dashboard.Recent, recentOrdersLimit)
	assert.Equal(t, "Post 4", dashboard.Recent[0].Title)

	empty := NewOrderUseCase(memory.New().Orders(), nil, false)
	dashboard, err = empty.Dashboard(ctx, model.OrderFilter{})
	require.NoError(t, err)
	assert.Zero(t, dashboard.Total)
	assert.NotNil(t, dashboard.Recent)
}

func TestOrderUseCaseNotifiesActorFirst(t *testing.T) {
	uc, notifier := newTestOrderUseCase(t)
	ctx := WithActor(context.Background(), model.AdminIdentityID)
	_, err := uc.UpdateStatus(ctx, "order-123", model.OrderStatusInReview)
	require.NoError(t, err)

	n, ok := notifier.Last()
	require.True(t, ok)
	assert.Equal(t, model.AdminIdentityID, n.RecipientID)
	assert.Regexp(t, `^notice-`, n.ID)
	assert.Equal(t, fixedNow, n.CreatedAt)
}
