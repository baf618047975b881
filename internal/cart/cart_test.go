package cart_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/SergeyBogomolovv/techmarket/internal/cart"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price string) entities.Product {
	return entities.Product{ID: id, Name: "product", Price: decimal.RequireFromString(price), Stock: 100}
}

func TestCart_Add(t *testing.T) {
	testCases := []struct {
		name    string
		actions func(c *cart.Cart, t *testing.T)
	}{
		{
			name: "new line",
			actions: func(c *cart.Cart, t *testing.T) {
				require.NoError(t, c.Add(product(1, "10.00"), 1))
				assert.Equal(t, 1, c.Len())
				assert.Equal(t, 1, c.Quantity(1))
			},
		},
		{
			name: "existing line is incremented",
			actions: func(c *cart.Cart, t *testing.T) {
				require.NoError(t, c.Add(product(1, "10.00"), 1))
				require.NoError(t, c.Add(product(1, "10.00"), 3))
				assert.Equal(t, 1, c.Len())
				assert.Equal(t, 4, c.Quantity(1))
			},
		},
		{
			name: "non-positive quantity rejected",
			actions: func(c *cart.Cart, t *testing.T) {
				assert.ErrorIs(t, c.Add(product(1, "10.00"), 0), entities.ErrInvalidQuantity)
				assert.ErrorIs(t, c.Add(product(1, "10.00"), -2), entities.ErrInvalidQuantity)
				assert.Equal(t, 0, c.Len())
			},
		},
		{
			name: "eleventh distinct product rejected",
			actions: func(c *cart.Cart, t *testing.T) {
				for i := 0; i < cart.MaxLines; i++ {
					require.NoError(t, c.Add(product(int64(i+1), "1.00"), 1))
				}
				before := c.Lines()

				err := c.Add(product(99, "1.00"), 1)
				assert.ErrorIs(t, err, entities.ErrCartFull)
				assert.Equal(t, before, c.Lines())
			},
		},
		{
			name: "full cart still increments existing line",
			actions: func(c *cart.Cart, t *testing.T) {
				for i := 0; i < cart.MaxLines; i++ {
					require.NoError(t, c.Add(product(int64(i+1), "1.00"), 1))
				}
				require.NoError(t, c.Add(product(5, "1.00"), 1))
				assert.Equal(t, 2, c.Quantity(5))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.actions(cart.New(), t)
		})
	}
}

func TestCart_SetQuantity(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "10.00"), 2))

	require.NoError(t, c.SetQuantity(1, 5))
	assert.Equal(t, 5, c.Quantity(1))

	require.NoError(t, c.SetQuantity(42, 3))
	assert.Equal(t, 1, c.Len(), "unknown product is not inserted")

	require.NoError(t, c.SetQuantity(42, 0))
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.SetQuantity(1, 0))
	assert.Equal(t, 0, c.Len())
}

func TestCart_QuantityBound(t *testing.T) {
	c := cart.New()
	p := product(1, "2.00")

	assert.ErrorIs(t, c.Add(p, math.MaxInt), entities.ErrInvalidQuantity)
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.Add(p, cart.MaxQuantity))
	assert.ErrorIs(t, c.Add(p, 1), entities.ErrInvalidQuantity)
	assert.Equal(t, cart.MaxQuantity, c.Quantity(1))
	assert.True(t, c.Total().IsPositive())

	assert.ErrorIs(t, c.SetQuantity(1, cart.MaxQuantity+1), entities.ErrInvalidQuantity)
	assert.Equal(t, cart.MaxQuantity, c.Quantity(1))
}

func TestCart_Subtract(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "10.00"), 2))
	require.NoError(t, c.Add(product(2, "20.00"), 1))
	snap := c.Snapshot()

	require.NoError(t, c.Add(product(1, "10.00"), 3))
	require.NoError(t, c.Add(product(3, "5.00"), 1))

	c.Subtract(snap.Lines)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Quantity(1))
	assert.Equal(t, 0, c.Quantity(2))
	assert.Equal(t, 1, c.Quantity(3))
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "10.00"), 1))
	require.NoError(t, c.Add(product(2, "20.00"), 1))

	c.Remove(3)
	assert.Equal(t, 2, c.Len())

	c.Remove(1)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(2), c.Lines()[0].Product.ID)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Total().Equal(decimal.Zero))
}

func TestCart_Total(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "30.00"), 2))
	require.NoError(t, c.Add(product(2, "10.00"), 1))
	assert.Equal(t, "70.00", c.Total().StringFixed(2))

	before := c.Total()
	require.NoError(t, c.Add(product(3, "0.10"), 3))
	assert.Equal(t, "70.30", c.Total().StringFixed(2))
	c.Remove(3)
	assert.True(t, before.Equal(c.Total()))
}

func TestCart_Snapshot(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "25.00"), 2))

	snap := c.Snapshot()
	require.NoError(t, c.SetQuantity(1, 10))
	require.NoError(t, c.Add(product(2, "5.00"), 1))

	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, "50.00", snap.Total.StringFixed(2))
	assert.False(t, snap.Empty())
}

func TestCart_Invariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	c := cart.New()

	for n := 0; n < 5000; n++ {
		id := int64(rnd.Intn(20) + 1)
		switch rnd.Intn(3) {
		case 0:
			_ = c.Add(product(id, "1.50"), rnd.Intn(4))
		case 1:
			_ = c.SetQuantity(id, rnd.Intn(6)-2)
		case 2:
			c.Remove(id)
		}

		lines := c.Lines()
		require.LessOrEqual(t, len(lines), cart.MaxLines)

		seen := make(map[int64]bool, len(lines))
		want := decimal.Zero
		for _, l := range lines {
			require.Greater(t, l.Quantity, 0)
			require.LessOrEqual(t, l.Quantity, cart.MaxQuantity)
			require.False(t, seen[l.Product.ID], "duplicate line")
			seen[l.Product.ID] = true
			want = want.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		require.True(t, want.Equal(c.Total()))
	}
}
