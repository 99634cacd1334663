package apperrors

import "errors"

// Shared sentinels translated by handlers into HTTP status codes.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrDeleteForbidden   = errors.New("delete not allowed in current status")
)
