package model

import "time"

// NotificationVariant mirrors the visual weight of a notification.
type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a short human readable message about an order operation.
type Notification struct {
	ID          string
	Title       string
	Description string
	Variant     NotificationVariant
	RecipientID string
	OrderID     string
	CreatedAt   time.Time
}
