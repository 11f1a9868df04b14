package dto

// UploadRequest reserves an upload slot.
type UploadRequest struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// UploadResponse carries the presigned upload target.
type UploadResponse struct {
	Key        string            `json:"key"`
	UploadURL  string            `json:"uploadUrl"`
	Attachment AttachmentPayload `json:"attachment"`
}
