package session_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/checkout"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/session"
	mocks "github.com/SergeyBogomolovv/techmarket/internal/session/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	buyer  = entities.Account{ID: 1, FirstName: "Ayse", LastName: "Demir", Address: "Kadikoy, Istanbul", Role: entities.RoleBuyer}
	seller = entities.Account{ID: 7, FirstName: "Mehmet", LastName: "Kaya", Address: "Cankaya, Ankara", Role: entities.RoleSeller}
	both   = entities.Account{ID: 9, FirstName: "Ali", Address: "Konak, Izmir", Role: entities.RoleBoth}

	remoteErr = fmt.Errorf("%w: connection refused", entities.ErrRemoteFailure)
)

func product(id int64, price string, stock int) entities.Product {
	return entities.Product{
		ID:       id,
		Name:     fmt.Sprintf("product-%d", id),
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		SellerID: seller.ID,
		Active:   true,
	}
}

func newSession(t *testing.T) (*session.Session, *mocks.MockMarketplace, *mocks.MockCatalog) {
	t.Helper()
	market := mocks.NewMockMarketplace(t)
	catalog := mocks.NewMockCatalog(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := session.New("test", logger, market, catalog, checkout.NewValidator(checkout.DefaultMinTotal))
	return s, market, catalog
}

func loginBuyer(t *testing.T, s *session.Session, market *mocks.MockMarketplace, account entities.Account) {
	t.Helper()
	market.EXPECT().Authenticate(mock.Anything, account.Email, "secret").Return(account, nil).Once()
	market.EXPECT().ListOrdersForBuyer(mock.Anything, account.ID).Return(nil, nil).Once()
	_, err := s.Login(context.Background(), account.Email, "secret")
	require.NoError(t, err)
	s.Wait()
}

func TestSession_Login(t *testing.T) {
	s, market, _ := newSession(t)

	older := entities.Order{ID: 1, BuyerID: buyer.ID, CreatedAt: time.Now().Add(-time.Hour)}
	newer := entities.Order{ID: 2, BuyerID: buyer.ID, CreatedAt: time.Now()}

	market.EXPECT().Authenticate(mock.Anything, "ayse@example.com", "secret").Return(buyer, nil).Once()
	market.EXPECT().ListOrdersForBuyer(mock.Anything, buyer.ID).Return([]entities.Order{older, newer}, nil).Once()

	account, err := s.Login(context.Background(), "ayse@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, buyer, account)

	s.Wait()

	state := s.State()
	assert.Equal(t, session.ViewHome, state.View)
	assert.True(t, state.Capabilities.CanBuy)
	assert.False(t, state.Capabilities.CanSell)
	assert.True(t, state.Cart.Empty())
	assert.Equal(t, buyer.Address, s.DefaultAddress())

	orders, err := s.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
}

func TestSession_LoginFailure(t *testing.T) {
	s, market, _ := newSession(t)

	market.EXPECT().Authenticate(mock.Anything, mock.Anything, mock.Anything).
		Return(entities.Account{}, entities.ErrInvalidCredentials).Once()

	_, err := s.Login(context.Background(), "ayse@example.com", "wrong")
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	assert.Nil(t, s.Account())
	assert.Equal(t, session.ViewLogin, s.State().View)
}

func TestSession_LoginSellerSkipsOrderHistory(t *testing.T) {
	s, market, _ := newSession(t)

	market.EXPECT().Authenticate(mock.Anything, mock.Anything, mock.Anything).Return(seller, nil).Once()

	_, err := s.Login(context.Background(), "mehmet@example.com", "secret")
	require.NoError(t, err)
	s.Wait()

	_, err = s.Orders()
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestSession_StaleReloadDropped(t *testing.T) {
	s, market, _ := newSession(t)

	release := make(chan struct{})
	other := entities.Account{ID: 2, Email: "other@example.com", Role: entities.RoleBuyer}
	otherOrders := []entities.Order{{ID: 20, BuyerID: other.ID}}

	market.EXPECT().Authenticate(mock.Anything, buyer.Email, "secret").Return(buyer, nil).Once()
	market.EXPECT().ListOrdersForBuyer(mock.Anything, buyer.ID).
		RunAndReturn(func(context.Context, int64) ([]entities.Order, error) {
			<-release
			return []entities.Order{{ID: 10, BuyerID: buyer.ID}}, nil
		}).Once()

	_, err := s.Login(context.Background(), buyer.Email, "secret")
	require.NoError(t, err)

	s.Logout()

	market.EXPECT().Authenticate(mock.Anything, other.Email, "secret").Return(other, nil).Once()
	market.EXPECT().ListOrdersForBuyer(mock.Anything, other.ID).Return(otherOrders, nil).Once()

	_, err = s.Login(context.Background(), other.Email, "secret")
	require.NoError(t, err)

	close(release)
	s.Wait()

	orders, err := s.Orders()
	require.NoError(t, err)
	assert.Equal(t, otherOrders, orders)
}

func TestSession_Register(t *testing.T) {
	s, market, _ := newSession(t)
	reg := entities.Registration{Email: "ayse@example.com", Password: "secret", FirstName: "Ayse", Role: entities.RoleBuyer}

	market.EXPECT().CreateAccount(mock.Anything, reg).Return(nil).Once()
	require.NoError(t, s.Register(context.Background(), reg))

	market.EXPECT().CreateAccount(mock.Anything, reg).Return(remoteErr).Once()
	assert.ErrorIs(t, s.Register(context.Background(), reg), entities.ErrRemoteFailure)
	assert.Nil(t, s.Account())
}

func TestSession_Logout(t *testing.T) {
	s, market, catalog := newSession(t)
	loginBuyer(t, s, market, buyer)

	catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, "30.00", 5), nil).Once()
	require.NoError(t, s.AddToCart(context.Background(), 1, 2))
	require.NoError(t, s.Navigate(session.ViewCart))

	s.Logout()

	state := s.State()
	assert.Nil(t, state.Account)
	assert.Equal(t, session.ViewLogin, state.View)
	assert.True(t, state.Cart.Empty())
	assert.False(t, state.Capabilities.CanBuy)
	assert.Empty(t, s.DefaultAddress())

	_, err := s.Orders()
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)
}

func TestSession_AddToCart(t *testing.T) {
	testCases := []struct {
		name         string
		account      *entities.Account
		mockBehavior func(market *mocks.MockMarketplace, catalog *mocks.MockCatalog)
		wantErr      error
	}{
		{
			name:    "OK",
			account: &buyer,
			mockBehavior: func(_ *mocks.MockMarketplace, catalog *mocks.MockCatalog) {
				catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, "30.00", 5), nil).Once()
			},
		},
		{
			name:    "Both roles may buy",
			account: &both,
			mockBehavior: func(_ *mocks.MockMarketplace, catalog *mocks.MockCatalog) {
				catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, "30.00", 5), nil).Once()
			},
		},
		{
			name:         "Not logged in",
			mockBehavior: func(*mocks.MockMarketplace, *mocks.MockCatalog) {},
			wantErr:      entities.ErrUnauthenticated,
		},
		{
			name:         "Seller cannot buy",
			account:      &seller,
			mockBehavior: func(*mocks.MockMarketplace, *mocks.MockCatalog) {},
			wantErr:      entities.ErrUnauthorized,
		},
		{
			name:    "Out of stock",
			account: &buyer,
			mockBehavior: func(_ *mocks.MockMarketplace, catalog *mocks.MockCatalog) {
				catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, "30.00", 0), nil).Once()
			},
			wantErr: entities.ErrOutOfStock,
		},
		{
			name:    "Unknown product",
			account: &buyer,
			mockBehavior: func(_ *mocks.MockMarketplace, catalog *mocks.MockCatalog) {
				catalog.EXPECT().Product(mock.Anything, int64(1)).Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, market, catalog := newSession(t)
			if tc.account != nil {
				market.EXPECT().ListOrdersForBuyer(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
				s.Start(*tc.account)
				s.Wait()
			}
			tc.mockBehavior(market, catalog)

			err := s.AddToCart(context.Background(), 1, 2)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.True(t, s.Cart().Empty())
				return
			}
			require.NoError(t, err)
			snap := s.Cart()
			require.Len(t, snap.Lines, 1)
			assert.Equal(t, 2, snap.Lines[0].Quantity)
			assert.True(t, decimal.NewFromInt(60).Equal(snap.Total))
		})
	}
}

func TestSession_CartEditing(t *testing.T) {
	s, market, catalog := newSession(t)
	loginBuyer(t, s, market, buyer)

	catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, "10.00", 5), nil)
	catalog.EXPECT().Product(mock.Anything, int64(2)).Return(product(2, "15.50", 5), nil)

	ctx := context.Background()
	require.NoError(t, s.AddToCart(ctx, 1, 1))
	require.NoError(t, s.AddToCart(ctx, 2, 1))
	require.NoError(t, s.AddToCart(ctx, 1, 2))

	snap := s.Cart()
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, 3, snap.Lines[0].Quantity)

	require.NoError(t, s.SetQuantity(2, 4))
	assert.True(t, decimal.RequireFromString("92.00").Equal(s.Cart().Total))

	require.NoError(t, s.SetQuantity(1, 0))
	require.Len(t, s.Cart().Lines, 1)

	require.NoError(t, s.RemoveFromCart(2))
	assert.True(t, s.Cart().Empty())

	s.Logout()
	assert.ErrorIs(t, s.SetQuantity(1, 1), entities.ErrUnauthenticated)
	assert.ErrorIs(t, s.RemoveFromCart(1), entities.ErrUnauthenticated)
}

func TestSession_CartFull(t *testing.T) {
	s, market, catalog := newSession(t)
	loginBuyer(t, s, market, buyer)

	for i := int64(0); i < 11; i++ {
		catalog.EXPECT().Product(mock.Anything, i+1).Return(product(i+1, "5.00", 3), nil).Once()
	}
	ctx := context.Background()
	for i := int64(0); i < 10; i++ {
		require.NoError(t, s.AddToCart(ctx, i+1, 1))
	}

	err := s.AddToCart(ctx, 11, 1)
	assert.ErrorIs(t, err, entities.ErrCartFull)
	assert.Len(t, s.Cart().Lines, 10)
}

func TestSession_Checkout(t *testing.T) {
	s, market, catalog := newSession(t)
	loginBuyer(t, s, market, buyer)

	catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, "30.00", 5), nil).Once()
	catalog.EXPECT().Product(mock.Anything, int64(2)).Return(product(2, "10.00", 5), nil).Once()
	ctx := context.Background()
	require.NoError(t, s.AddToCart(ctx, 1, 2))
	require.NoError(t, s.AddToCart(ctx, 2, 1))

	placed := entities.Order{ID: 42, BuyerID: buyer.ID, TotalAmount: decimal.RequireFromString("70.00"), Status: entities.StatusPending}

	market.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, sub entities.OrderSubmission) (entities.Order, error) {
			assert.Equal(t, buyer.ID, sub.BuyerID)
			assert.Equal(t, "Kadikoy, Istanbul", sub.ShippingAddress)
			assert.True(t, decimal.RequireFromString("70.00").Equal(sub.TotalAmount))
			assert.Equal(t, []entities.SubmissionItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}, sub.Items)
			return placed, nil
		}).Once()
	catalog.EXPECT().Refresh(mock.Anything).Return(nil).Once()
	market.EXPECT().ListOrdersForBuyer(mock.Anything, buyer.ID).Return([]entities.Order{placed}, nil).Once()

	order, err := s.Checkout(ctx, "  Kadikoy, Istanbul ")
	require.NoError(t, err)
	assert.Equal(t, placed, order)

	state := s.State()
	assert.True(t, state.Cart.Empty())
	assert.Equal(t, session.ViewOrders, state.View)

	orders, err := s.Orders()
	require.NoError(t, err)
	assert.Equal(t, []entities.Order{placed}, orders)
}

func TestSession_CheckoutKeepsItemsAddedInFlight(t *testing.T) {
	s, market, catalog := newSession(t)
	loginBuyer(t, s, market, buyer)

	ctx := context.Background()
	catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, "30.00", 5), nil).Twice()
	catalog.EXPECT().Product(mock.Anything, int64(2)).Return(product(2, "10.00", 5), nil).Once()
	require.NoError(t, s.AddToCart(ctx, 1, 2))

	placed := entities.Order{ID: 43, BuyerID: buyer.ID, TotalAmount: decimal.RequireFromString("60.00"), Status: entities.StatusPending}
	market.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, sub entities.OrderSubmission) (entities.Order, error) {
			require.NoError(t, s.AddToCart(ctx, 1, 1))
			require.NoError(t, s.AddToCart(ctx, 2, 1))
			return placed, nil
		}).Once()
	catalog.EXPECT().Refresh(mock.Anything).Return(nil).Once()
	market.EXPECT().ListOrdersForBuyer(mock.Anything, buyer.ID).Return([]entities.Order{placed}, nil).Once()

	_, err := s.Checkout(ctx, "Kadikoy, Istanbul")
	require.NoError(t, err)

	lines := s.State().Cart.Lines
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].Product.ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(2), lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestSession_CheckoutRejected(t *testing.T) {
	testCases := []struct {
		name    string
		price   string
		address string
		empty   bool
		wantErr error
	}{
		{name: "Empty cart", empty: true, address: "Kadikoy", wantErr: entities.ErrEmptyCart},
		{name: "Blank address", price: "60.00", address: "   ", wantErr: entities.ErrMissingAddress},
		{name: "Below minimum", price: "49.99", address: "Kadikoy", wantErr: entities.ErrBelowMinimum},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, market, catalog := newSession(t)
			loginBuyer(t, s, market, buyer)

			if !tc.empty {
				catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, tc.price, 5), nil).Once()
				require.NoError(t, s.AddToCart(context.Background(), 1, 1))
			}
			before := s.Cart()

			_, err := s.Checkout(context.Background(), tc.address)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, before.Lines, s.Cart().Lines)
			market.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestSession_CheckoutUnauthenticated(t *testing.T) {
	s, market, _ := newSession(t)

	_, err := s.Checkout(context.Background(), "Kadikoy")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
	market.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestSession_CheckoutRemoteFailure(t *testing.T) {
	s, market, catalog := newSession(t)
	loginBuyer(t, s, market, buyer)

	catalog.EXPECT().Product(mock.Anything, int64(1)).Return(product(1, "60.00", 5), nil).Once()
	require.NoError(t, s.AddToCart(context.Background(), 1, 1))
	require.NoError(t, s.Navigate(session.ViewCart))

	market.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, remoteErr).Once()

	_, err := s.Checkout(context.Background(), "Kadikoy")
	assert.ErrorIs(t, err, entities.ErrRemoteFailure)

	state := s.State()
	assert.Len(t, state.Cart.Lines, 1)
	assert.Equal(t, session.ViewCart, state.View)
}

func pendingOrder(id int64, sellerID int64) entities.Order {
	return entities.Order{
		ID:      id,
		BuyerID: buyer.ID,
		Status:  entities.StatusPending,
		Items:   []entities.OrderItem{{ProductID: 1, SellerID: sellerID, Quantity: 1}},
	}
}

func TestSession_Transition(t *testing.T) {
	s, market, _ := newSession(t)
	s.Start(seller)

	pending := pendingOrder(5, seller.ID)
	confirmed := pending
	confirmed.Status = entities.StatusConfirmed

	market.EXPECT().ListOrdersForSeller(mock.Anything, seller.ID).Return([]entities.Order{pending}, nil).Once()
	orders, err := s.SellerOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	market.EXPECT().SetOrderStatus(mock.Anything, int64(5), entities.StatusConfirmed, seller.ID).Return(nil).Once()
	market.EXPECT().ListOrdersForSeller(mock.Anything, seller.ID).Return([]entities.Order{confirmed}, nil).Once()

	require.NoError(t, s.Transition(context.Background(), 5, entities.StatusConfirmed))

	orders, err = s.SellerOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.StatusConfirmed, orders[0].Status)
}

func TestSession_TransitionRemoteFailureKeepsStatus(t *testing.T) {
	s, market, _ := newSession(t)
	s.Start(seller)

	pending := pendingOrder(5, seller.ID)

	market.EXPECT().ListOrdersForSeller(mock.Anything, seller.ID).Return([]entities.Order{pending}, nil).Twice()
	market.EXPECT().SetOrderStatus(mock.Anything, int64(5), entities.StatusConfirmed, seller.ID).Return(remoteErr).Once()

	_, err := s.SellerOrders(context.Background())
	require.NoError(t, err)

	err = s.Transition(context.Background(), 5, entities.StatusConfirmed)
	assert.ErrorIs(t, err, entities.ErrRemoteFailure)

	orders, err := s.SellerOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, orders[0].Status)
}

func TestSession_TransitionRejected(t *testing.T) {
	testCases := []struct {
		name    string
		account *entities.Account
		order   entities.Order
		to      entities.OrderStatus
		wantErr error
	}{
		{
			name:    "Not logged in",
			order:   pendingOrder(5, seller.ID),
			to:      entities.StatusConfirmed,
			wantErr: entities.ErrUnauthenticated,
		},
		{
			name:    "Buyer cannot manage orders",
			account: &buyer,
			order:   pendingOrder(5, seller.ID),
			to:      entities.StatusConfirmed,
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:    "Skipping a state",
			account: &seller,
			order:   pendingOrder(5, seller.ID),
			to:      entities.StatusShipped,
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:    "Foreign order",
			account: &seller,
			order:   pendingOrder(5, 99),
			to:      entities.StatusConfirmed,
			wantErr: entities.ErrNotOwner,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, market, _ := newSession(t)
			if tc.account != nil {
				market.EXPECT().ListOrdersForBuyer(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
				s.Start(*tc.account)
				s.Wait()
			}
			market.EXPECT().ListOrdersForSeller(mock.Anything, mock.Anything).Return([]entities.Order{tc.order}, nil).Maybe()

			err := s.Transition(context.Background(), tc.order.ID, tc.to)
			assert.ErrorIs(t, err, tc.wantErr)
			market.AssertNotCalled(t, "SetOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSession_TransitionUnknownOrder(t *testing.T) {
	s, market, _ := newSession(t)
	s.Start(seller)

	market.EXPECT().ListOrdersForSeller(mock.Anything, seller.ID).Return(nil, nil).Once()

	err := s.Transition(context.Background(), 404, entities.StatusConfirmed)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestSession_AddProduct(t *testing.T) {
	s, market, catalog := newSession(t)
	s.Start(seller)

	created := entities.Product{ID: 3, Name: "Keyboard", SellerID: seller.ID}

	market.EXPECT().CreateProduct(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p entities.NewProduct) (entities.Product, error) {
			assert.Equal(t, seller.ID, p.SellerID)
			return created, nil
		}).Once()
	catalog.EXPECT().Refresh(mock.Anything).Return(errors.New("catalog unavailable")).Once()

	got, err := s.AddProduct(context.Background(), entities.NewProduct{SellerID: 1234, Name: "Keyboard"})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSession_AddProductRequiresSeller(t *testing.T) {
	s, market, _ := newSession(t)
	loginBuyer(t, s, market, buyer)

	_, err := s.AddProduct(context.Background(), entities.NewProduct{Name: "Keyboard"})
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestSession_Navigate(t *testing.T) {
	s, market, _ := newSession(t)

	assert.ErrorIs(t, s.Navigate(session.ViewHome), entities.ErrUnauthenticated)
	assert.NoError(t, s.Navigate(session.ViewLogin))

	loginBuyer(t, s, market, buyer)
	assert.NoError(t, s.Navigate(session.ViewCart))
	assert.NoError(t, s.Navigate(session.ViewOrders))
	assert.ErrorIs(t, s.Navigate(session.ViewManageOrders), entities.ErrUnauthorized)
	assert.ErrorIs(t, s.Navigate(session.ViewAddProduct), entities.ErrUnauthorized)
	assert.Error(t, s.Navigate(session.View("admin")))
	assert.Equal(t, session.ViewOrders, s.State().View)
}

func TestSession_HandleOrderEvent(t *testing.T) {
	s, market, _ := newSession(t)
	loginBuyer(t, s, market, buyer)

	ev := entities.OrderEvent{Type: entities.OrderStatusChanged, OrderID: 5, BuyerID: buyer.ID, SellerIDs: []int64{seller.ID}}
	updated := []entities.Order{{ID: 5, BuyerID: buyer.ID, Status: entities.StatusShipped}}

	market.EXPECT().ListOrdersForBuyer(mock.Anything, buyer.ID).Return(updated, nil).Once()
	require.NoError(t, s.HandleOrderEvent(context.Background(), ev))

	orders, err := s.Orders()
	require.NoError(t, err)
	assert.Equal(t, updated, orders)

	other := ev
	other.BuyerID = 1000
	require.NoError(t, s.HandleOrderEvent(context.Background(), other))
}
