package contract

import (
	"errors"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
)

// Reasons carried in the code field of marketplace error responses.
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeEmailTaken         = "email_taken"
	CodeInsufficientStock  = "insufficient_stock"
	CodeBelowMinimum       = "below_minimum"
	CodeEmptyOrder         = "empty_order"
	CodeInvalidTransition  = "invalid_transition"
	CodeNotOwner           = "not_owner"
	CodeUnauthorized       = "unauthorized"
	CodeProductNotFound    = "product_not_found"
	CodeCategoryNotFound   = "category_not_found"
	CodeAccountNotFound    = "account_not_found"
	CodeOrderNotFound      = "order_not_found"
)

// ordered so that refinements are matched before the errors they wrap
var codes = []struct {
	err  error
	code string
}{
	{entities.ErrInvalidCredentials, CodeInvalidCredentials},
	{entities.ErrEmailTaken, CodeEmailTaken},
	{entities.ErrInsufficientStock, CodeInsufficientStock},
	{entities.ErrBelowMinimum, CodeBelowMinimum},
	{entities.ErrEmptyCart, CodeEmptyOrder},
	{entities.ErrInvalidTransition, CodeInvalidTransition},
	{entities.ErrNotOwner, CodeNotOwner},
	{entities.ErrUnauthorized, CodeUnauthorized},
	{entities.ErrProductNotFound, CodeProductNotFound},
	{entities.ErrCategoryNotFound, CodeCategoryNotFound},
	{entities.ErrAccountNotFound, CodeAccountNotFound},
	{entities.ErrOrderNotFound, CodeOrderNotFound},
}

// ErrorCode returns the reason reported for err, or "" if err is not a known failure.
func ErrorCode(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// CodeError maps a reported reason back to the error it stands for.
func CodeError(code string) (error, bool) {
	for _, c := range codes {
		if c.code == code {
			return c.err, true
		}
	}
	return nil, false
}
