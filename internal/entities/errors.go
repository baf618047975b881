package entities

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrCartFull          = errors.New("cart cannot hold more distinct products")
	ErrMissingAddress    = errors.New("shipping address is required")
	ErrBelowMinimum      = errors.New("order total is below the minimum")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrRemoteFailure     = errors.New("remote service failure")

	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrNotOwner           = fmt.Errorf("%w: order contains products of another seller", ErrUnauthorized)
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmailTaken         = errors.New("email is already in use")

	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrSessionNotFound  = errors.New("session not found")
)
