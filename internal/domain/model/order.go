package model

import "time"

// OrderStatus describes where a design request is in the studio pipeline.
type OrderStatus string

const (
	OrderStatusReceived     OrderStatus = "RECEIVED"
	OrderStatusInProduction OrderStatus = "IN_PRODUCTION"
	OrderStatusInReview     OrderStatus = "IN_REVIEW"
	OrderStatusDelivered    OrderStatus = "DELIVERED"
	OrderStatusRejected     OrderStatus = "REJECTED"
)

// OrderStatuses lists every status in pipeline order.
var OrderStatuses = []OrderStatus{
	OrderStatusReceived,
	OrderStatusInProduction,
	OrderStatusInReview,
	OrderStatusDelivered,
	OrderStatusRejected,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ServiceType is the category of design work requested.
type ServiceType string

const (
	ServicePost        ServiceType = "POST"
	ServiceWebsite     ServiceType = "WEBSITE"
	ServiceLogo        ServiceType = "LOGO"
	ServiceBranding    ServiceType = "BRANDING"
	ServiceSocialMedia ServiceType = "SOCIAL_MEDIA"
	ServiceOther       ServiceType = "OTHER"
)

// ServiceTypes lists every supported service category.
var ServiceTypes = []ServiceType{
	ServicePost,
	ServiceWebsite,
	ServiceLogo,
	ServiceBranding,
	ServiceSocialMedia,
	ServiceOther,
}

// Valid reports whether t is one of the known service categories.
func (t ServiceType) Valid() bool {
	for _, known := range ServiceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Order is a single design request. Collections are never nil.
type Order struct {
	ID            string
	Title         string
	Description   string
	ServiceType   ServiceType
	Status        OrderStatus
	ClientID      string
	CreatedAt     time.Time
	DeliveryDate  *time.Time
	Files         []Attachment
	DeliveryFiles []Attachment
	AdminComments []Comment
	BriefingData  map[string]any
}

// Normalize replaces nil collections with empty ones.
func (o *Order) Normalize() {
	if o.Files == nil {
		o.Files = []Attachment{}
	}
	if o.DeliveryFiles == nil {
		o.DeliveryFiles = []Attachment{}
	}
	if o.AdminComments == nil {
		o.AdminComments = []Comment{}
	}
	if o.BriefingData == nil {
		o.BriefingData = map[string]any{}
	}
}

// NewOrder carries client supplied fields for order creation.
//
//   - Title is required and trimmed.
//   - Description defaults to empty.
//   - ServiceType defaults to OTHER.
//   - ClientID is the identity placing the order.
//   - Files default to none; attachments missing an ID or timestamp get one.
//   - BriefingData defaults to an empty map.
type NewOrder struct {
	Title        string
	Description  string
	ServiceType  ServiceType
	ClientID     string
	Files        []Attachment
	BriefingData map[string]any
}

// OrderFilter narrows order listings. Zero values match everything.
type OrderFilter struct {
	ClientID    string
	Status      OrderStatus
	ServiceType ServiceType
	Search      string
}

// Dashboard aggregates order counters for overview screens.
type Dashboard struct {
	Total    int
	ByStatus map[OrderStatus]int
	Recent   []Order
}
