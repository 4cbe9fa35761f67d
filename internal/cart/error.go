package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidUserKey  = errors.New("user key is required")
	ErrInvalidProduct  = errors.New("product key is required")

	// -- Resource State --
	ErrCartItemNotFound = errors.New("cart item not found")
)
