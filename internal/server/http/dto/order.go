package dto

import "time"

// AttachmentPayload describes a stored file.
type AttachmentPayload struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	URL       string     `json:"url"`
	Size      int64      `json:"size"`
	Type      string     `json:"type"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// CommentResponse represents a studio comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `json:"userId"`
}

// CreateOrderRequest describes order creation payload.
type CreateOrderRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	ServiceType  string              `json:"serviceType"`
	Files        []AttachmentPayload `json:"files"`
	BriefingData map[string]any      `json:"briefingData"`
}

// OrderResponse represents order state.
type OrderResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	ServiceType   string              `json:"serviceType"`
	Status        string              `json:"status"`
	ClientID      string              `json:"clientId"`
	CreatedAt     time.Time           `json:"createdAt"`
	DeliveryDate  *time.Time          `json:"deliveryDate,omitempty"`
	Files         []AttachmentPayload `json:"files"`
	DeliveryFiles []AttachmentPayload `json:"deliveryFiles"`
	AdminComments []CommentResponse   `json:"adminComments"`
	BriefingData  map[string]any      `json:"briefingData"`
}

// StatusRequest changes order status.
type StatusRequest struct {
	Status string `json:"status"`
}

// CommentRequest adds a studio comment.
type CommentRequest struct {
	Text string `json:"text"`
}

// DashboardResponse aggregates order counters.
type DashboardResponse struct {
	Total    int             `json:"total"`
	ByStatus map[string]int  `json:"byStatus"`
	Recent   []OrderResponse `json:"recent"`
}
