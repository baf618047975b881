package entities

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) String() string {
	return string(s)
}

type OrderItem struct {
	ProductID   int64
	ProductName string
	SellerID    int64
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

type Order struct {
	ID              int64
	BuyerID         int64
	BuyerName       string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	ShippingAddress string
	Status          OrderStatus
	CreatedAt       time.Time
}

// SellerIDs returns the distinct sellers whose products appear in the order.
func (o Order) SellerIDs() []int64 {
	ids := make([]int64, 0, len(o.Items))
	for _, it := range o.Items {
		if !slices.Contains(ids, it.SellerID) {
			ids = append(ids, it.SellerID)
		}
	}
	return ids
}

// OrderSubmission is the payload of an order creation request.
type OrderSubmission struct {
	BuyerID         int64
	TotalAmount     decimal.Decimal
	ShippingAddress string
	Items           []SubmissionItem
}

type SubmissionItem struct {
	ProductID int64
	Quantity  int
}
