package handler

import (
	"errors"
	"net/http"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
)

var statuses = []struct {
	err    error
	status int
}{
	{entities.ErrInvalidCredentials, http.StatusUnauthorized},
	{entities.ErrUnauthenticated, http.StatusUnauthorized},
	{entities.ErrUnauthorized, http.StatusForbidden},
	{entities.ErrEmailTaken, http.StatusConflict},
	{entities.ErrInsufficientStock, http.StatusConflict},
	{entities.ErrInvalidTransition, http.StatusConflict},
	{entities.ErrBelowMinimum, http.StatusUnprocessableEntity},
	{entities.ErrEmptyCart, http.StatusUnprocessableEntity},
	{entities.ErrMissingAddress, http.StatusUnprocessableEntity},
	{entities.ErrInvalidQuantity, http.StatusUnprocessableEntity},
	{entities.ErrProductNotFound, http.StatusNotFound},
	{entities.ErrCategoryNotFound, http.StatusNotFound},
	{entities.ErrAccountNotFound, http.StatusNotFound},
	{entities.ErrOrderNotFound, http.StatusNotFound},
}

// statusOf returns the response status for a domain failure, or 500 if err is
// not one.
func statusOf(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}
