// services/errors.go
package services

import "errors"

// Error kinds surfaced by the service layer. Controllers map each kind
// to an HTTP status; anything unlisted is a server error.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateLine       = errors.New("item already exists in the cart")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrOrderCreationFailed = errors.New("order creation failed")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidAssignee     = errors.New("user is not part of the delivery crew")
	ErrInvalidInput        = errors.New("invalid input")
	ErrAlreadyMember       = errors.New("user is already in the group")
	ErrUsernameTaken       = errors.New("username or email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
