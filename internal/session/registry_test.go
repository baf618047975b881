package session_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/checkout"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/session"
	mocks "github.com/SergeyBogomolovv/techmarket/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, capacity int, ttl time.Duration) (*session.Registry, *mocks.MockMarketplace) {
	t.Helper()
	market := mocks.NewMockMarketplace(t)
	catalog := mocks.NewMockCatalog(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return session.NewRegistry(logger, market, catalog, checkout.NewValidator(checkout.DefaultMinTotal), capacity, ttl), market
}

func TestRegistry_CreateGetDelete(t *testing.T) {
	r, _ := newRegistry(t, 10, time.Minute)

	s := r.Create()
	require.NotEmpty(t, s.ID())

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	r.Delete(s.ID())
	_, err = r.Get(s.ID())
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestRegistry_Expiry(t *testing.T) {
	r, _ := newRegistry(t, 10, 20*time.Millisecond)

	s := r.Create()
	s.Start(seller)

	time.Sleep(40 * time.Millisecond)

	_, err := r.Get(s.ID())
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
	assert.Nil(t, s.Account())
}

func TestRegistry_CapacityEvictsOldest(t *testing.T) {
	r, _ := newRegistry(t, 2, time.Minute)

	first := r.Create()
	first.Start(seller)
	r.Create()
	r.Create()

	assert.Equal(t, 2, r.Len())
	_, err := r.Get(first.ID())
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
	assert.Nil(t, first.Account())
}

func TestRegistry_HandleOrderEvent(t *testing.T) {
	r, market := newRegistry(t, 10, time.Minute)

	market.EXPECT().ListOrdersForBuyer(mock.Anything, buyer.ID).Return(nil, nil).Once()
	buyerSession := r.Create()
	buyerSession.Start(buyer)
	buyerSession.Wait()

	sellerSession := r.Create()
	sellerSession.Start(seller)
	market.EXPECT().ListOrdersForSeller(mock.Anything, seller.ID).Return(nil, nil).Once()
	_, err := sellerSession.SellerOrders(context.Background())
	require.NoError(t, err)

	r.Create()

	assert.Len(t, r.ForAccount(buyer.ID), 1)
	assert.Len(t, r.ForAccount(seller.ID), 1)
	assert.Empty(t, r.ForAccount(1000))

	placed := entities.Order{ID: 1, BuyerID: buyer.ID, Status: entities.StatusPending}
	market.EXPECT().ListOrdersForBuyer(mock.Anything, buyer.ID).Return([]entities.Order{placed}, nil).Once()
	market.EXPECT().ListOrdersForSeller(mock.Anything, seller.ID).Return([]entities.Order{placed}, nil).Once()

	err = r.HandleOrderEvent(context.Background(), entities.OrderEvent{
		Type:      entities.OrderCreated,
		OrderID:   1,
		BuyerID:   buyer.ID,
		SellerIDs: []int64{seller.ID},
	})
	require.NoError(t, err)

	orders, err := buyerSession.Orders()
	require.NoError(t, err)
	assert.Equal(t, []entities.Order{placed}, orders)

	orders, err = sellerSession.SellerOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entities.Order{placed}, orders)
}
