package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidComment     = errors.New("invalid comment")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidAttachment  = errors.New("invalid attachment")
	ErrStorageUnavailable = errors.New("file storage unavailable")
)
