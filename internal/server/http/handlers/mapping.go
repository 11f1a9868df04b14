package handlers

import (
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/server/http/dto"
)

func toIdentityResponse(identity model.Identity) dto.IdentityResponse {
	return dto.IdentityResponse{
		ID:        identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
		Plan:      string(identity.Plan),
		Role:      string(identity.Role),
		CreatedAt: identity.CreatedAt,
	}
}

func toAttachmentPayloads(files []model.Attachment) []dto.AttachmentPayload {
	out := make([]dto.AttachmentPayload, 0, len(files))
	for _, f := range files {
		out = append(out, toAttachmentPayload(f))
	}
	return out
}

func toAttachmentPayload(f model.Attachment) dto.AttachmentPayload {
	payload := dto.AttachmentPayload{ID: f.ID, Name: f.Name, URL: f.URL, Size: f.Size, Type: f.Type}
	if !f.CreatedAt.IsZero() {
		created := f.CreatedAt
		payload.CreatedAt = &created
	}
	return payload
}

func fromAttachmentPayload(p dto.AttachmentPayload) model.Attachment {
	a := model.Attachment{ID: p.ID, Name: p.Name, URL: p.URL, Size: p.Size, Type: p.Type}
	if p.CreatedAt != nil {
		a.CreatedAt = *p.CreatedAt
	}
	return a
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	comments := make([]dto.CommentResponse, 0, len(order.AdminComments))
	for _, c := range order.AdminComments {
		comments = append(comments, dto.CommentResponse{ID: c.ID, Text: c.Text, CreatedAt: c.CreatedAt, UserID: c.UserID})
	}
	briefing := order.BriefingData
	if briefing == nil {
		briefing = map[string]any{}
	}
	return dto.OrderResponse{
		ID:            order.ID,
		Title:         order.Title,
		Description:   order.Description,
		ServiceType:   string(order.ServiceType),
		Status:        string(order.Status),
		ClientID:      order.ClientID,
		CreatedAt:     order.CreatedAt,
		DeliveryDate:  order.DeliveryDate,
		Files:         toAttachmentPayloads(order.Files),
		DeliveryFiles: toAttachmentPayloads(order.DeliveryFiles),
		AdminComments: comments,
		BriefingData:  briefing,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Variant:     string(n.Variant),
		OrderID:     n.OrderID,
		CreatedAt:   n.CreatedAt,
	}
}

func toPlanResponse(p model.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		Name:        string(p.Name),
		Description: p.Description,
		Price:       p.Price,
		Features:    append([]string{}, p.Features...),
		Limitations: append([]string{}, p.Limitations...),
		Recommended: p.Recommended,
	}
}
