package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyBatch        = errors.New("order batch is empty")
	ErrInvalidUserKey    = errors.New("user key is required")
	ErrInvalidQuantity   = errors.New("invalid order quantity")
	ErrMissingAddress    = errors.New("delivery address is required")
	ErrInvalidDeliveries = errors.New("delivery stages are required")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
)
