package usecase

import (
	"time"

	"github.com/polkiloo/tareffa/internal/domain/model"
)

// SampleOrders returns the demo orders written on the first listing.
func SampleOrders(now time.Time) []model.Order {
	day := 24 * time.Hour
	delivered := now.Add(-3 * day)
	return []model.Order{
		{
			ID:          "order-123",
			Title:       "Instagram Post Design",
			Description: "Need a professional post for product launch",
			ServiceType: model.ServicePost,
			Status:      model.OrderStatusInProduction,
			ClientID:    model.GenericIdentityID,
			CreatedAt:   now.Add(-3 * day),
			Files: []model.Attachment{
				{ID: "file-1", Name: "reference.jpg", URL: "/placeholder.svg", Size: 1024, Type: "image/jpeg", CreatedAt: now},
			},
			DeliveryFiles: []model.Attachment{},
			AdminComments: []model.Comment{
				{ID: "comment-1", Text: "Design in progress, will have first draft by tomorrow", CreatedAt: now.Add(-2 * day), UserID: model.AdminIdentityID},
			},
			BriefingData: map[string]any{
				"brand_colors":    "#ff5500, #0055ff",
				"target_audience": "Young professionals",
				"message":         "Product launch announcement",
			},
		},
		{
			ID:           "order-456",
			Title:        "Logo Redesign",
			Description:  "Need a modern update to our existing logo",
			ServiceType:  model.ServiceLogo,
			Status:       model.OrderStatusDelivered,
			ClientID:     model.GenericIdentityID,
			CreatedAt:    now.Add(-10 * day),
			DeliveryDate: &delivered,
			Files: []model.Attachment{
				{ID: "file-2", Name: "old_logo.png", URL: "/placeholder.svg", Size: 2048, Type: "image/png", CreatedAt: now},
			},
			DeliveryFiles: []model.Attachment{
				{ID: "delivery-1", Name: "final_logo.zip", URL: "/placeholder.svg", Size: 5120, Type: "application/zip", CreatedAt: delivered},
			},
			AdminComments: []model.Comment{
				{ID: "comment-2", Text: "Final logo delivered, please let us know if you need any adjustments", CreatedAt: delivered, UserID: model.AdminIdentityID},
			},
			BriefingData: map[string]any{
				"current_brand_colors": "#336699, #ffffff",
				"desired_style":        "Modern, minimalist",
				"industry":             "Technology",
			},
		},
	}
}
