package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/cart"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/policy"
	"github.com/SergeyBogomolovv/techmarket/internal/workflow"
	"github.com/SergeyBogomolovv/techmarket/pkg/trm"
	"github.com/SergeyBogomolovv/techmarket/pkg/utils"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	LockProducts(ctx context.Context, ids []int64) ([]entities.Product, error)
	DecrementStock(ctx context.Context, productID int64, quantity int) error
	SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	LockOrder(ctx context.Context, id int64) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status entities.OrderStatus) error
	OrdersByBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error)
	OrdersBySeller(ctx context.Context, sellerID int64) ([]entities.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev entities.OrderEvent) error
}

// errors that a retry of the whole transaction cannot fix
var permanentOrderErrors = []error{
	entities.ErrUnauthenticated,
	entities.ErrUnauthorized,
	entities.ErrEmptyCart,
	entities.ErrMissingAddress,
	entities.ErrInvalidQuantity,
	entities.ErrBelowMinimum,
	entities.ErrInsufficientStock,
	entities.ErrInvalidTransition,
	entities.ErrProductNotFound,
	entities.ErrAccountNotFound,
	entities.ErrOrderNotFound,
	context.Canceled,
	context.DeadlineExceeded,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	accounts  AccountRepo
	publisher EventPublisher
	minTotal  decimal.Decimal
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	accounts AccountRepo,
	publisher EventPublisher,
	minTotal decimal.Decimal,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		accounts:  accounts,
		publisher: publisher,
		minTotal:  minTotal,
		retry:     utils.DefaultRetryConfig,
		now:       time.Now,
	}
}

// CreateOrder places the order in one transaction: products are locked, stock is
// checked and decremented and the total is recomputed from current prices.
func (s *orderService) CreateOrder(ctx context.Context, sub entities.OrderSubmission) (entities.Order, error) {
	quantities, err := mergeItems(sub.Items)
	if err != nil {
		return entities.Order{}, err
	}
	address := strings.TrimSpace(sub.ShippingAddress)
	if address == "" {
		return entities.Order{}, entities.ErrMissingAddress
	}

	buyer, err := s.accounts.AccountByID(ctx, sub.BuyerID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := policy.RequireBuy(&buyer); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			ids := make([]int64, 0, len(quantities))
			for id := range quantities {
				ids = append(ids, id)
			}
			slices.Sort(ids)

			products, err := s.repo.LockProducts(ctx, ids)
			if err != nil {
				return fmt.Errorf("failed to lock products: %w", err)
			}

			items, total, err := s.price(products, ids, quantities)
			if err != nil {
				return err
			}
			if !sub.TotalAmount.Equal(total) {
				s.logger.Warn("submitted total differs from catalog prices",
					slog.Int64("buyer_id", buyer.ID),
					slog.String("submitted", sub.TotalAmount.StringFixed(2)),
					slog.String("computed", total.StringFixed(2)),
				)
			}
			if total.LessThan(s.minTotal) {
				return entities.ErrBelowMinimum
			}

			for _, it := range items {
				if err := s.repo.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
					return err
				}
			}

			order, err = s.repo.SaveOrder(ctx, entities.Order{
				BuyerID:         buyer.ID,
				BuyerName:       buyer.FullName(),
				Items:           items,
				TotalAmount:     total,
				ShippingAddress: address,
				Status:          entities.StatusPending,
			})
			if err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			return nil
		})
	}

	if err := utils.RetryContext(ctx, s.retry, fn, permanentOrderErrors...); err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order created", slog.Int64("order_id", order.ID), slog.String("total", order.TotalAmount.StringFixed(2)))
	s.publish(ctx, entities.OrderCreated, order)
	return order, nil
}

// UpdateStatus moves the order through the workflow on behalf of a seller owning
// every item in it.
func (s *orderService) UpdateStatus(ctx context.Context, orderID, sellerID int64, status entities.OrderStatus) (entities.Order, error) {
	seller, err := s.accounts.AccountByID(ctx, sellerID)
	if errors.Is(err, entities.ErrAccountNotFound) {
		return entities.Order{}, entities.ErrUnauthenticated
	}
	if err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}

		if _, err := workflow.Request(&seller, order, status); err != nil {
			return err
		}

		if err := s.repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
			return err
		}
		order.Status = status
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order status changed",
		slog.Int64("order_id", order.ID),
		slog.Int64("seller_id", seller.ID),
		slog.String("status", string(status)),
	)
	s.publish(ctx, entities.OrderStatusChanged, order)
	return order, nil
}

func (s *orderService) OrdersByBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.OrdersByBuyer(ctx, buyerID)
		return err
	}
	if err := utils.RetryContext(ctx, s.retry, fn); err != nil {
		return nil, fmt.Errorf("failed to list buyer orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) OrdersBySeller(ctx context.Context, sellerID int64) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.OrdersBySeller(ctx, sellerID)
		return err
	}
	if err := utils.RetryContext(ctx, s.retry, fn); err != nil {
		return nil, fmt.Errorf("failed to list seller orders: %w", err)
	}
	return orders, nil
}

// price builds order items from the locked products and returns the total.
func (s *orderService) price(products []entities.Product, ids []int64, quantities map[int64]int) ([]entities.OrderItem, decimal.Decimal, error) {
	byID := make(map[int64]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entities.OrderItem, 0, len(ids))
	total := decimal.Zero
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || !p.Active {
			return nil, decimal.Zero, fmt.Errorf("%w: %d", entities.ErrProductNotFound, id)
		}
		qty := quantities[id]
		if p.Stock < qty {
			return nil, decimal.Zero, fmt.Errorf("%w: %s has %d left", entities.ErrInsufficientStock, p.Name, p.Stock)
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		items = append(items, entities.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			SellerID:    p.SellerID,
			Quantity:    qty,
			UnitPrice:   p.Price,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}
	return items, total, nil
}

// publish reports the change to subscribers. The order is already committed, so
// a failure is only logged.
func (s *orderService) publish(ctx context.Context, typ entities.OrderEventType, o entities.Order) {
	ev := entities.OrderEvent{
		Type:       typ,
		OrderID:    o.ID,
		BuyerID:    o.BuyerID,
		SellerIDs:  o.SellerIDs(),
		Status:     o.Status,
		OccurredAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Error("failed to publish order event",
			slog.Int64("order_id", o.ID),
			slog.String("type", string(typ)),
			slog.Any("error", err),
		)
	}
}

func mergeItems(items []entities.SubmissionItem) (map[int64]int, error) {
	if len(items) == 0 {
		return nil, entities.ErrEmptyCart
	}
	quantities := make(map[int64]int, len(items))
	for _, it := range items {
		if it.Quantity <= 0 || it.Quantity > cart.MaxQuantity-quantities[it.ProductID] {
			return nil, entities.ErrInvalidQuantity
		}
		quantities[it.ProductID] += it.Quantity
	}
	return quantities, nil
}
