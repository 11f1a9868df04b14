package model

import "time"

// AttachmentKind tells reference material apart from delivered work.
type AttachmentKind string

const (
	AttachmentReference AttachmentKind = "reference"
	AttachmentDelivery  AttachmentKind = "delivery"
)

// Attachment references a stored file.
type Attachment struct {
	ID        string
	Name      string
	URL       string
	Size      int64
	Type      string
	CreatedAt time.Time
}

// Comment is a studio note posted on an order.
type Comment struct {
	ID        string
	Text      string
	CreatedAt time.Time
	UserID    string
}

// UploadSlot is a presigned location a client uploads file content to.
type UploadSlot struct {
	Key        string
	UploadURL  string
	Attachment Attachment
}
