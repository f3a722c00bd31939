package services

import "errors"

// Service-level failures handlers map onto the HTTP taxonomy.
var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidState      = errors.New("invalid lifecycle state")
	ErrInsufficientStock = errors.New("insufficient stock")
)
