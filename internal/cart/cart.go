// Package cart keeps the line items of the active session in memory.
package cart

import (
	"slices"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	// MaxLines is the maximum number of distinct products a cart may hold.
	MaxLines = 10
	// MaxQuantity bounds the quantity of a single line.
	MaxQuantity = 1000
)

type Line struct {
	Product  entities.Product
	Quantity int
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line or appends a new one. A line
// never grows past MaxQuantity.
func (c *Cart) Add(product entities.Product, qty int) error {
	if qty <= 0 || qty > MaxQuantity {
		return entities.ErrInvalidQuantity
	}
	if i := c.index(product.ID); i >= 0 {
		if qty > MaxQuantity-c.lines[i].Quantity {
			return entities.ErrInvalidQuantity
		}
		c.lines[i].Quantity += qty
		return nil
	}
	if len(c.lines) >= MaxLines {
		return entities.ErrCartFull
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: qty})
	return nil
}

// SetQuantity replaces the quantity of a line. A non-positive quantity removes it.
func (c *Cart) SetQuantity(productID int64, qty int) error {
	if qty <= 0 {
		c.Remove(productID)
		return nil
	}
	if qty > MaxQuantity {
		return entities.ErrInvalidQuantity
	}
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = qty
	}
	return nil
}

func (c *Cart) Remove(productID int64) {
	if i := c.index(productID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Subtract takes ordered lines out of the cart. Quantities added after the lines
// were captured stay in the cart.
func (c *Cart) Subtract(ordered []Line) {
	for _, o := range ordered {
		i := c.index(o.Product.ID)
		if i < 0 {
			continue
		}
		if c.lines[i].Quantity <= o.Quantity {
			c.lines = slices.Delete(c.lines, i, i+1)
			continue
		}
		c.lines[i].Quantity -= o.Quantity
	}
}

// Total is the sum of price times quantity over all lines, in currency precision.
func (c *Cart) Total() decimal.Decimal {
	return total(c.lines)
}

func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Quantity(productID int64) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Snapshot captures the content and total of the cart at one instant.
type Snapshot struct {
	Lines      []Line
	Total      decimal.Decimal
	CapturedAt time.Time
}

func (s Snapshot) Empty() bool {
	return len(s.Lines) == 0
}

func (c *Cart) Snapshot() Snapshot {
	lines := c.Lines()
	return Snapshot{
		Lines:      lines,
		Total:      total(lines),
		CapturedAt: time.Now(),
	}
}

func (c *Cart) index(productID int64) int {
	return slices.IndexFunc(c.lines, func(l Line) bool {
		return l.Product.ID == productID
	})
}

func total(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum.Round(2)
}
