package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/handler"
	mocks "github.com/SergeyBogomolovv/techmarket/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type services struct {
	catalog  *mocks.MockCatalogService
	accounts *mocks.MockAccountService
	orders   *mocks.MockOrderService
}

func setup(t *testing.T) (http.Handler, services) {
	s := services{
		catalog:  mocks.NewMockCatalogService(t),
		accounts: mocks.NewMockAccountService(t),
		orders:   mocks.NewMockOrderService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, s.catalog, s.accounts, s.orders)

	r := chi.NewRouter()
	h.Init(r)
	return r, s
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHTTPHandler_ListProducts(t *testing.T) {
	r, s := setup(t)

	s.catalog.EXPECT().ListProducts(mock.Anything).Return([]entities.Product{
		{ID: 1, Name: "Laptop", Price: decimal.RequireFromString("999.90"), Stock: 2, SellerID: 5, CategoryID: 1, Active: true},
	}, nil).Once()

	rr := do(r, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Laptop"`)
	assert.Contains(t, rr.Body.String(), `"price":"999.9"`)
	assert.Contains(t, rr.Body.String(), `"is_active":true`)
}

func TestHTTPHandler_ListCategories(t *testing.T) {
	r, s := setup(t)

	s.catalog.EXPECT().ListCategories(mock.Anything).Return(nil, errors.New("db error")).Once()

	rr := do(r, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"internal server error"`)
}

func TestHTTPHandler_CreateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(s services)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"seller_id":5,"category_id":1,"name":"Laptop","price":"999.90","stock":2}`,
			mockBehavior: func(s services) {
				s.catalog.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.NewProduct) bool {
					return p.SellerID == 5 && p.Price.Equal(decimal.RequireFromString("999.90"))
				})).Return(entities.Product{ID: 9, Name: "Laptop", Active: true}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":9`,
		},
		{
			name:       "non positive price",
			body:       `{"seller_id":5,"category_id":1,"name":"Laptop","price":"0","stock":2}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"price":"gt=0"`,
		},
		{
			name:       "missing name",
			body:       `{"seller_id":5,"category_id":1,"price":"10","stock":2}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"name":"required"`,
		},
		{
			name: "buyer cannot sell",
			body: `{"seller_id":5,"category_id":1,"name":"Laptop","price":"10","stock":2}`,
			mockBehavior: func(s services) {
				s.catalog.EXPECT().CreateProduct(mock.Anything, mock.Anything).
					Return(entities.Product{}, entities.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"code":"unauthorized"`,
		},
		{
			name: "unknown category",
			body: `{"seller_id":5,"category_id":99,"name":"Laptop","price":"10","stock":2}`,
			mockBehavior: func(s services) {
				s.catalog.EXPECT().CreateProduct(mock.Anything, mock.Anything).
					Return(entities.Product{}, entities.ErrCategoryNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"category_not_found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, s := setup(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(s)
			}

			rr := do(r, http.MethodPost, "/api/products", tc.body)
			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Register(t *testing.T) {
	r, s := setup(t)

	s.accounts.EXPECT().Register(mock.Anything, mock.MatchedBy(func(reg entities.Registration) bool {
		return reg.Email == "ada@example.com" && reg.Role == entities.RoleBoth
	})).Return(entities.Account{ID: 3, Email: "ada@example.com", Role: entities.RoleBoth}, nil).Once()

	rr := do(r, http.MethodPost, "/api/users",
		`{"email":"ada@example.com","password":"secret1","first_name":"Ada","last_name":"L","role":"BOTH"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":3`)
	assert.NotContains(t, rr.Body.String(), "secret1")

	s.accounts.EXPECT().Register(mock.Anything, mock.Anything).Return(entities.Account{}, entities.ErrEmailTaken).Once()
	rr = do(r, http.MethodPost, "/api/users",
		`{"email":"ada@example.com","password":"secret1","first_name":"Ada","last_name":"L","role":"BUYER"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"email_taken"`)

	rr = do(r, http.MethodPost, "/api/users",
		`{"email":"ada@example.com","password":"secret1","first_name":"Ada","last_name":"L","role":"ADMIN"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"role":"oneof=BUYER SELLER BOTH"`)
}

func TestHTTPHandler_Login(t *testing.T) {
	r, s := setup(t)

	s.accounts.EXPECT().Authenticate(mock.Anything, "ada@example.com", "secret1").
		Return(entities.Account{ID: 3, Email: "ada@example.com", Role: entities.RoleBuyer}, nil).Once()
	s.accounts.EXPECT().Authenticate(mock.Anything, "ada@example.com", "wrong").
		Return(entities.Account{}, entities.ErrInvalidCredentials).Once()

	rr := do(r, http.MethodPost, "/api/users/login", `{"email":"ada@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"role":"BUYER"`)

	rr = do(r, http.MethodPost, "/api/users/login", `{"email":"ada@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"invalid_credentials"`)

	rr = do(r, http.MethodPost, "/api/users/login", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"invalid request body"`)
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	body := `{"buyer_id":1,"total_amount":"70.00","shipping_address":"1 Main St","items":[{"product_id":10,"quantity":2}]}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(s services)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: body,
			mockBehavior: func(s services) {
				s.orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(sub entities.OrderSubmission) bool {
					return sub.BuyerID == 1 && len(sub.Items) == 1 && sub.Items[0].Quantity == 2
				})).Return(entities.Order{
					ID: 100, BuyerID: 1, Status: entities.StatusPending, TotalAmount: decimal.NewFromInt(70),
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"PENDING"`,
		},
		{
			name:       "no items",
			body:       `{"buyer_id":1,"total_amount":"70.00","shipping_address":"1 Main St","items":[]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"items":"min=1"`,
		},
		{
			name: "insufficient stock",
			body: body,
			mockBehavior: func(s services) {
				s.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"insufficient_stock"`,
		},
		{
			name: "below minimum",
			body: body,
			mockBehavior: func(s services) {
				s.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrBelowMinimum).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"below_minimum"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, s := setup(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(s)
			}

			rr := do(r, http.MethodPost, "/api/orders", tc.body)
			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	r, s := setup(t)

	s.orders.EXPECT().OrdersByBuyer(mock.Anything, int64(1)).Return([]entities.Order{{ID: 4, BuyerID: 1}}, nil).Once()
	s.orders.EXPECT().OrdersBySeller(mock.Anything, int64(5)).Return([]entities.Order{}, nil).Once()

	rr := do(r, http.MethodGet, "/api/orders/user/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":4`)

	rr = do(r, http.MethodGet, "/api/orders/seller/5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = do(r, http.MethodGet, "/api/orders/user/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(s services)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"CONFIRMED","seller_id":5}`,
			mockBehavior: func(s services) {
				s.orders.EXPECT().UpdateStatus(mock.Anything, int64(7), int64(5), entities.StatusConfirmed).
					Return(entities.Order{ID: 7, Status: entities.StatusConfirmed}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"CONFIRMED"`,
		},
		{
			name:       "unknown status",
			body:       `{"status":"LOST","seller_id":5}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"status":"oneof=`,
		},
		{
			name: "not owner",
			body: `{"status":"CONFIRMED","seller_id":5}`,
			mockBehavior: func(s services) {
				s.orders.EXPECT().UpdateStatus(mock.Anything, int64(7), int64(5), entities.StatusConfirmed).
					Return(entities.Order{}, entities.ErrNotOwner).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"code":"not_owner"`,
		},
		{
			name: "invalid transition",
			body: `{"status":"DELIVERED","seller_id":5}`,
			mockBehavior: func(s services) {
				s.orders.EXPECT().UpdateStatus(mock.Anything, int64(7), int64(5), entities.StatusDelivered).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"invalid_transition"`,
		},
		{
			name: "order not found",
			body: `{"status":"CONFIRMED","seller_id":5}`,
			mockBehavior: func(s services) {
				s.orders.EXPECT().UpdateStatus(mock.Anything, int64(7), int64(5), entities.StatusConfirmed).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"order_not_found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, s := setup(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(s)
			}

			rr := do(r, http.MethodPut, "/api/orders/7/status", tc.body)
			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
