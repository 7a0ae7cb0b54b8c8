package analyses

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnreadableDocument = errors.New("unreadable document")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeNotFound   = "not_found"
	ErrorCodeUnreadable = "unreadable_document"
	ErrorCodeTooLarge   = "payload_too_large"
	ErrorCodeInternal   = "internal_error"
)
