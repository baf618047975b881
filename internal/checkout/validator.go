// Package checkout decides whether a cart snapshot may be submitted as an order.
package checkout

import (
	"strings"

	"github.com/SergeyBogomolovv/techmarket/internal/cart"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/policy"
	"github.com/shopspring/decimal"
)

// DefaultMinTotal is the smallest order total accepted for submission.
var DefaultMinTotal = decimal.NewFromInt(50)

type Validator struct {
	minTotal decimal.Decimal
}

func NewValidator(minTotal decimal.Decimal) *Validator {
	return &Validator{minTotal: minTotal}
}

func (v *Validator) MinTotal() decimal.Decimal {
	return v.minTotal
}

// Validate checks the rules in order and returns the first failure. On success it
// builds the payload for the order service; it never submits it.
func (v *Validator) Validate(snap cart.Snapshot, address string, account *entities.Account) (entities.OrderSubmission, error) {
	if account == nil || !policy.For(account).CanBuy {
		return entities.OrderSubmission{}, entities.ErrUnauthorized
	}
	if snap.Empty() {
		return entities.OrderSubmission{}, entities.ErrEmptyCart
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return entities.OrderSubmission{}, entities.ErrMissingAddress
	}
	if snap.Total.LessThan(v.minTotal) {
		return entities.OrderSubmission{}, entities.ErrBelowMinimum
	}

	items := make([]entities.SubmissionItem, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		items = append(items, entities.SubmissionItem{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
		})
	}

	return entities.OrderSubmission{
		BuyerID:         account.ID,
		TotalAmount:     snap.Total,
		ShippingAddress: address,
		Items:           items,
	}, nil
}
