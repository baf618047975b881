package storefront

import (
	"errors"
	"net/http"

	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
)

type failure struct {
	err    error
	status int
	code   string
}

// matched in order; reasons reported by the marketplace come before the generic
// remote failure they travel with
var failures = []failure{
	{entities.ErrSessionNotFound, http.StatusUnauthorized, "session_not_found"},
	{entities.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{entities.ErrInvalidCredentials, http.StatusUnauthorized, contract.CodeInvalidCredentials},
	{entities.ErrNotOwner, http.StatusForbidden, contract.CodeNotOwner},
	{entities.ErrUnauthorized, http.StatusForbidden, contract.CodeUnauthorized},
	{entities.ErrEmptyCart, http.StatusUnprocessableEntity, "empty_cart"},
	{entities.ErrMissingAddress, http.StatusUnprocessableEntity, "missing_address"},
	{entities.ErrBelowMinimum, http.StatusUnprocessableEntity, contract.CodeBelowMinimum},
	{entities.ErrInvalidQuantity, http.StatusUnprocessableEntity, "invalid_quantity"},
	{entities.ErrCartFull, http.StatusConflict, "cart_full"},
	{entities.ErrOutOfStock, http.StatusConflict, "out_of_stock"},
	{entities.ErrInsufficientStock, http.StatusConflict, contract.CodeInsufficientStock},
	{entities.ErrInvalidTransition, http.StatusConflict, contract.CodeInvalidTransition},
	{entities.ErrEmailTaken, http.StatusConflict, contract.CodeEmailTaken},
	{entities.ErrProductNotFound, http.StatusNotFound, contract.CodeProductNotFound},
	{entities.ErrCategoryNotFound, http.StatusNotFound, contract.CodeCategoryNotFound},
	{entities.ErrOrderNotFound, http.StatusNotFound, contract.CodeOrderNotFound},
	{entities.ErrAccountNotFound, http.StatusNotFound, contract.CodeAccountNotFound},
	{entities.ErrRemoteFailure, http.StatusBadGateway, "remote_failure"},
}

// classify returns the response status and reason for err. Unknown errors are
// internal failures with an empty reason.
func classify(err error) (int, string, string) {
	for _, f := range failures {
		if errors.Is(err, f.err) {
			return f.status, f.code, f.err.Error()
		}
	}
	return http.StatusInternalServerError, "", "internal server error"
}
