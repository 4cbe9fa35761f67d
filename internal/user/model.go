package user

import (
	"freshkart-be/internal/cart"
	"freshkart-be/internal/order"
)

// User is the account record. HashedPassword is an opaque blob persisted
// verbatim; comparing it against a supplied password is the auth layer's job.
type User struct {
	Key            uint    `json:"_key"`
	Username       string  `json:"username"`
	Email          string  `json:"emailId"`
	HashedPassword []byte  `json:"-"`
	Phone          *string `json:"phoneNo,omitempty"`
	ProprietorName *string `json:"proprietorName,omitempty"`
	GST            *string `json:"gst,omitempty"`
}

// Profile is a user together with everything they own.
type Profile struct {
	User
	Orders    []order.Order   `json:"orders"`
	CartItems []cart.CartItem `json:"cartItems"`
}

type CreateUserParams struct {
	Username       string
	Email          string
	HashedPassword []byte
}
