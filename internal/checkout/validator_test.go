package checkout_test

import (
	"testing"

	"github.com/SergeyBogomolovv/techmarket/internal/cart"
	"github.com/SergeyBogomolovv/techmarket/internal/checkout"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, lines ...cart.Line) cart.Snapshot {
	t.Helper()
	c := cart.New()
	for _, l := range lines {
		require.NoError(t, c.Add(l.Product, l.Quantity))
	}
	return c.Snapshot()
}

func line(id int64, price string, qty int) cart.Line {
	return cart.Line{
		Product:  entities.Product{ID: id, Price: decimal.RequireFromString(price)},
		Quantity: qty,
	}
}

func TestValidator_Validate(t *testing.T) {
	buyer := &entities.Account{ID: 7, Role: entities.RoleBuyer}
	seller := &entities.Account{ID: 8, Role: entities.RoleSeller}
	both := &entities.Account{ID: 9, Role: entities.RoleBoth}

	testCases := []struct {
		name    string
		snap    cart.Snapshot
		address string
		account *entities.Account
		wantErr error
	}{
		{
			name:    "ok",
			snap:    snapshot(t, line(1, "30.00", 2), line(2, "10.00", 1)),
			address: "123 Main St",
			account: buyer,
		},
		{
			name:    "both role may buy",
			snap:    snapshot(t, line(1, "50.00", 1)),
			address: "123 Main St",
			account: both,
		},
		{
			name:    "no account",
			snap:    snapshot(t, line(1, "30.00", 2)),
			address: "123 Main St",
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:    "seller cannot buy",
			snap:    snapshot(t, line(1, "30.00", 2)),
			address: "123 Main St",
			account: seller,
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:    "empty cart regardless of address",
			snap:    snapshot(t),
			address: "",
			account: buyer,
			wantErr: entities.ErrEmptyCart,
		},
		{
			name:    "blank address",
			snap:    snapshot(t, line(1, "30.00", 2)),
			address: "  \t\n",
			account: buyer,
			wantErr: entities.ErrMissingAddress,
		},
		{
			name:    "below minimum",
			snap:    snapshot(t, line(1, "49.99", 1)),
			address: "123 Main St",
			account: buyer,
			wantErr: entities.ErrBelowMinimum,
		},
		{
			name:    "exactly minimum",
			snap:    snapshot(t, line(1, "25.00", 2)),
			address: "123 Main St",
			account: buyer,
		},
		{
			name:    "unauthorized wins over empty cart",
			snap:    snapshot(t),
			account: seller,
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:    "missing address wins over minimum",
			snap:    snapshot(t, line(1, "1.00", 1)),
			account: buyer,
			wantErr: entities.ErrMissingAddress,
		},
	}

	v := checkout.NewValidator(checkout.DefaultMinTotal)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := v.Validate(tc.snap, tc.address, tc.account)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, sub.Items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.account.ID, sub.BuyerID)
			assert.True(t, tc.snap.Total.Equal(sub.TotalAmount))
			assert.Len(t, sub.Items, len(tc.snap.Lines))
		})
	}
}

func TestValidator_Payload(t *testing.T) {
	v := checkout.NewValidator(checkout.DefaultMinTotal)
	snap := snapshot(t, line(1, "30.00", 2), line(2, "10.00", 1))

	sub, err := v.Validate(snap, "  123 Main St ", &entities.Account{ID: 7, Role: entities.RoleBuyer})
	require.NoError(t, err)

	assert.Equal(t, entities.OrderSubmission{
		BuyerID:         7,
		TotalAmount:     sub.TotalAmount,
		ShippingAddress: "123 Main St",
		Items: []entities.SubmissionItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}, sub)
	assert.Equal(t, "70.00", sub.TotalAmount.StringFixed(2))
}
