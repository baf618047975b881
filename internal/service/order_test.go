package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/service"
	mocks "github.com/SergeyBogomolovv/techmarket/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/techmarket/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	buyer  = entities.Account{ID: 1, FirstName: "Ada", LastName: "Buyer", Role: entities.RoleBuyer}
	seller = entities.Account{ID: 2, FirstName: "Sam", LastName: "Seller", Role: entities.RoleSeller}

	laptop = entities.Product{ID: 10, Name: "Laptop", Price: decimal.RequireFromString("40.00"), Stock: 5, SellerID: 2, Active: true}
	mouse  = entities.Product{ID: 11, Name: "Mouse", Price: decimal.RequireFromString("15.50"), Stock: 1, SellerID: 2, Active: true}
)

type orderService interface {
	CreateOrder(ctx context.Context, sub entities.OrderSubmission) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID, sellerID int64, status entities.OrderStatus) (entities.Order, error)
	OrdersByBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error)
	OrdersBySeller(ctx context.Context, sellerID int64) ([]entities.Order, error)
}

type orderDeps struct {
	tx        *txMocks.MockManager
	repo      *mocks.MockOrderRepo
	accounts  *mocks.MockAccountRepo
	publisher *mocks.MockEventPublisher
}

func newOrderService(t *testing.T) (orderService, orderDeps) {
	d := orderDeps{
		tx:        txMocks.NewMockManager(t),
		repo:      mocks.NewMockOrderRepo(t),
		accounts:  mocks.NewMockAccountRepo(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	svc := service.NewOrderService(logger, d.tx, d.repo, d.accounts, d.publisher, decimal.NewFromInt(50))
	return svc, d
}

func passThrough(tx *txMocks.MockManager) {
	tx.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, cb func(context.Context) error) error {
		return cb(ctx)
	})
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc, d := newOrderService(t)
	passThrough(d.tx)

	d.accounts.EXPECT().AccountByID(mock.Anything, buyer.ID).Return(buyer, nil).Once()
	d.repo.EXPECT().LockProducts(mock.Anything, []int64{10, 11}).Return([]entities.Product{laptop, mouse}, nil).Once()
	d.repo.EXPECT().DecrementStock(mock.Anything, int64(10), 2).Return(nil).Once()
	d.repo.EXPECT().DecrementStock(mock.Anything, int64(11), 1).Return(nil).Once()
	d.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = 100
			return o, nil
		}).Once()
	d.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(ev entities.OrderEvent) bool {
		return ev.Type == entities.OrderCreated && ev.OrderID == 100 && ev.BuyerID == buyer.ID &&
			len(ev.SellerIDs) == 1 && ev.SellerIDs[0] == seller.ID && ev.Status == entities.StatusPending
	})).Return(nil).Once()

	order, err := svc.CreateOrder(context.Background(), entities.OrderSubmission{
		BuyerID: buyer.ID,
		// client totals are advisory
		TotalAmount:     decimal.NewFromInt(1),
		ShippingAddress: "  1 Main St ",
		Items: []entities.SubmissionItem{
			{ProductID: 11, Quantity: 1},
			{ProductID: 10, Quantity: 1},
			{ProductID: 10, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, entities.StatusPending, order.Status)
	assert.Equal(t, "1 Main St", order.ShippingAddress)
	assert.Equal(t, "Ada Buyer", order.BuyerName)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("95.50")), order.TotalAmount.String())
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.RequireFromString("80.00")))
}

func TestOrderService_CreateOrder_Rejected(t *testing.T) {
	valid := []entities.SubmissionItem{{ProductID: 10, Quantity: 2}}

	testCases := []struct {
		name         string
		sub          entities.OrderSubmission
		mockBehavior func(d orderDeps)
		wantErr      error
	}{
		{
			name:    "Empty order",
			sub:     entities.OrderSubmission{BuyerID: 1, ShippingAddress: "addr"},
			wantErr: entities.ErrEmptyCart,
		},
		{
			name: "Zero quantity",
			sub: entities.OrderSubmission{BuyerID: 1, ShippingAddress: "addr",
				Items: []entities.SubmissionItem{{ProductID: 10, Quantity: 0}}},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name: "Duplicate items above line limit",
			sub: entities.OrderSubmission{BuyerID: 1, ShippingAddress: "addr",
				Items: []entities.SubmissionItem{{ProductID: 10, Quantity: 600}, {ProductID: 10, Quantity: 600}}},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name:    "Blank address",
			sub:     entities.OrderSubmission{BuyerID: 1, ShippingAddress: "   ", Items: valid},
			wantErr: entities.ErrMissingAddress,
		},
		{
			name: "Seller cannot buy",
			sub:  entities.OrderSubmission{BuyerID: 2, ShippingAddress: "addr", Items: valid},
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, int64(2)).Return(seller, nil).Once()
			},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name: "Insufficient stock",
			sub: entities.OrderSubmission{BuyerID: 1, ShippingAddress: "addr",
				Items: []entities.SubmissionItem{{ProductID: 11, Quantity: 4}}},
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, int64(1)).Return(buyer, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockProducts(mock.Anything, []int64{11}).Return([]entities.Product{mouse}, nil).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name: "Below minimum",
			sub: entities.OrderSubmission{BuyerID: 1, ShippingAddress: "addr",
				Items: []entities.SubmissionItem{{ProductID: 10, Quantity: 1}}},
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, int64(1)).Return(buyer, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockProducts(mock.Anything, []int64{10}).Return([]entities.Product{laptop}, nil).Once()
			},
			wantErr: entities.ErrBelowMinimum,
		},
		{
			name: "Delisted product",
			sub:  entities.OrderSubmission{BuyerID: 1, ShippingAddress: "addr", Items: valid},
			mockBehavior: func(d orderDeps) {
				inactive := laptop
				inactive.Active = false
				d.accounts.EXPECT().AccountByID(mock.Anything, int64(1)).Return(buyer, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockProducts(mock.Anything, []int64{10}).Return([]entities.Product{inactive}, nil).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "Unknown product",
			sub:  entities.OrderSubmission{BuyerID: 1, ShippingAddress: "addr", Items: valid},
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, int64(1)).Return(buyer, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockProducts(mock.Anything, []int64{10}).Return(nil, nil).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(d)
			}

			_, err := svc.CreateOrder(context.Background(), tc.sub)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrderService_CreateOrder_RetriesTransientFailure(t *testing.T) {
	svc, d := newOrderService(t)
	passThrough(d.tx)

	d.accounts.EXPECT().AccountByID(mock.Anything, buyer.ID).Return(buyer, nil).Once()
	d.repo.EXPECT().LockProducts(mock.Anything, []int64{10}).Return(nil, errors.New("connection reset")).Once()
	d.repo.EXPECT().LockProducts(mock.Anything, []int64{10}).Return([]entities.Product{laptop}, nil).Once()
	d.repo.EXPECT().DecrementStock(mock.Anything, int64(10), 2).Return(nil).Once()
	d.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: 5, BuyerID: buyer.ID}, nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	order, err := svc.CreateOrder(context.Background(), entities.OrderSubmission{
		BuyerID:         buyer.ID,
		ShippingAddress: "addr",
		Items:           []entities.SubmissionItem{{ProductID: 10, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), order.ID)
}

func TestOrderService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	svc, d := newOrderService(t)
	passThrough(d.tx)

	d.accounts.EXPECT().AccountByID(mock.Anything, buyer.ID).Return(buyer, nil).Once()
	d.repo.EXPECT().LockProducts(mock.Anything, []int64{10}).Return([]entities.Product{laptop}, nil).Once()
	d.repo.EXPECT().DecrementStock(mock.Anything, int64(10), 2).Return(nil).Once()
	d.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: 5, BuyerID: buyer.ID}, nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := svc.CreateOrder(context.Background(), entities.OrderSubmission{
		BuyerID:         buyer.ID,
		ShippingAddress: "addr",
		Items:           []entities.SubmissionItem{{ProductID: 10, Quantity: 2}},
	})
	assert.NoError(t, err)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	pending := entities.Order{
		ID:      7,
		BuyerID: buyer.ID,
		Status:  entities.StatusPending,
		Items:   []entities.OrderItem{{ProductID: 10, SellerID: seller.ID, Quantity: 1}},
	}
	foreign := pending
	foreign.Items = append([]entities.OrderItem{{ProductID: 12, SellerID: 99, Quantity: 1}}, pending.Items...)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		status       entities.OrderStatus
		mockBehavior func(d orderDeps)
		wantErr      error
	}{
		{
			name:   "OK",
			status: entities.StatusConfirmed,
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, seller.ID).Return(seller, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockOrder(mock.Anything, int64(7)).Return(pending, nil).Once()
				d.repo.EXPECT().UpdateOrderStatus(mock.Anything, int64(7), entities.StatusConfirmed).Return(nil).Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(ev entities.OrderEvent) bool {
					return ev.Type == entities.OrderStatusChanged && ev.Status == entities.StatusConfirmed
				})).Return(nil).Once()
			},
		},
		{
			name:   "Unknown seller",
			status: entities.StatusConfirmed,
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, seller.ID).Return(entities.Account{}, entities.ErrAccountNotFound).Once()
			},
			wantErr: entities.ErrUnauthenticated,
		},
		{
			name:   "Foreign items",
			status: entities.StatusConfirmed,
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, seller.ID).Return(seller, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockOrder(mock.Anything, int64(7)).Return(foreign, nil).Once()
			},
			wantErr: entities.ErrNotOwner,
		},
		{
			name:   "Skipping a step",
			status: entities.StatusDelivered,
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, seller.ID).Return(seller, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockOrder(mock.Anything, int64(7)).Return(pending, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "Order not found",
			status: entities.StatusConfirmed,
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, seller.ID).Return(seller, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockOrder(mock.Anything, int64(7)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "Update fails",
			status: entities.StatusCancelled,
			mockBehavior: func(d orderDeps) {
				d.accounts.EXPECT().AccountByID(mock.Anything, seller.ID).Return(seller, nil).Once()
				passThrough(d.tx)
				d.repo.EXPECT().LockOrder(mock.Anything, int64(7)).Return(pending, nil).Once()
				d.repo.EXPECT().UpdateOrderStatus(mock.Anything, int64(7), entities.StatusCancelled).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newOrderService(t)
			tc.mockBehavior(d)

			order, err := svc.UpdateStatus(context.Background(), 7, seller.ID, tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, order.Status)
		})
	}
}

func TestOrderService_OrdersByBuyer(t *testing.T) {
	svc, d := newOrderService(t)

	orders := []entities.Order{{ID: 1, BuyerID: buyer.ID}}
	d.repo.EXPECT().OrdersByBuyer(mock.Anything, buyer.ID).Return(nil, errors.New("temporary error")).Once()
	d.repo.EXPECT().OrdersByBuyer(mock.Anything, buyer.ID).Return(orders, nil).Once()

	got, err := svc.OrdersByBuyer(context.Background(), buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_OrdersBySeller(t *testing.T) {
	svc, d := newOrderService(t)

	orders := []entities.Order{{ID: 1, BuyerID: buyer.ID}}
	d.repo.EXPECT().OrdersBySeller(mock.Anything, seller.ID).Return(orders, nil).Once()

	got, err := svc.OrdersBySeller(context.Background(), seller.ID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
