package entities

import "time"

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is published by the marketplace whenever an order is created or moves
// through the workflow.
type OrderEvent struct {
	Type       OrderEventType
	OrderID    int64
	BuyerID    int64
	SellerIDs  []int64
	Status     OrderStatus
	OccurredAt time.Time
}
