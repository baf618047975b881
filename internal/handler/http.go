// Package handler exposes the marketplace API.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	CreateProduct(ctx context.Context, p entities.NewProduct) (entities.Product, error)
}

type AccountService interface {
	Register(ctx context.Context, reg entities.Registration) (entities.Account, error)
	Authenticate(ctx context.Context, email, password string) (entities.Account, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, sub entities.OrderSubmission) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID, sellerID int64, status entities.OrderStatus) (entities.Order, error)
	OrdersByBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error)
	OrdersBySeller(ctx context.Context, sellerID int64) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	catalog  CatalogService
	accounts AccountService
	orders   OrderService
}

func NewHTTPHandler(logger *slog.Logger, catalog CatalogService, accounts AccountService, orders OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		catalog:  catalog,
		accounts: accounts,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/products", h.ListProducts)
		r.Post("/products", h.CreateProduct)

		r.Post("/users", h.Register)
		r.Post("/users/login", h.Login)

		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/user/{user_id}", h.ListBuyerOrders)
		r.Get("/orders/seller/{seller_id}", h.ListSellerOrders)
		r.Put("/orders/{order_id}/status", h.UpdateStatus)
	})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		utils.WriteError(w, "internal server error", status)
		return
	}
	utils.WriteCodedError(w, err.Error(), contract.ErrorCode(err), status)
}

// ListCategories returns every product category.
// @Summary      List categories
// @Tags         catalog
// @Success      200  {array}   contract.Category
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/categories [get]
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]contract.Category, 0, len(categories))
	for _, c := range categories {
		res = append(res, contract.CategoryEntityToJSON(c))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// ListProducts returns the active products.
// @Summary      List products
// @Tags         catalog
// @Success      200  {array}   contract.Product
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]contract.Product, 0, len(products))
	for _, p := range products {
		res = append(res, contract.ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateProduct lists a product for a seller.
// @Summary      Create product
// @Tags         catalog
// @Param        request  body      contract.CreateProductRequest  true  "Product"
// @Success      201  {object}  contract.Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      403  {object}  utils.ErrorResponse "Account cannot sell"
// @Failure      404  {object}  utils.ErrorResponse "Unknown seller or category"
// @Router       /api/products [post]
func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateProductRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !req.Price.IsPositive() {
		utils.WriteJSON(w, utils.ValidationErrorResponse{
			Message: "invalid request",
			Fields:  map[string]string{"price": "gt=0"},
		}, http.StatusBadRequest)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), contract.NewProductJSONToEntity(req))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, contract.ProductEntityToJSON(product), http.StatusCreated)
}

// Register creates an account.
// @Summary      Register
// @Tags         users
// @Param        request  body      contract.RegisterRequest  true  "Account data"
// @Success      201  {object}  contract.Account
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      409  {object}  utils.ErrorResponse "Email already in use"
// @Router       /api/users [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req contract.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.accounts.Register(r.Context(), contract.RegistrationJSONToEntity(req))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	registrations.WithLabelValues(string(account.Role)).Inc()
	utils.WriteJSON(w, contract.AccountEntityToJSON(account), http.StatusCreated)
}

// Login checks the credentials and returns the account.
// @Summary      Login
// @Tags         users
// @Param        request  body      contract.LoginRequest  true  "Credentials"
// @Success      200  {object}  contract.Account
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "Invalid credentials"
// @Router       /api/users/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req contract.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, contract.AccountEntityToJSON(account), http.StatusOK)
}

// CreateOrder places an order for a buyer.
// @Summary      Create order
// @Tags         orders
// @Param        request  body      contract.CreateOrderRequest  true  "Order"
// @Success      201  {object}  contract.Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      403  {object}  utils.ErrorResponse "Account cannot buy"
// @Failure      409  {object}  utils.ErrorResponse "Insufficient stock"
// @Failure      422  {object}  utils.ErrorResponse "Total below minimum"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), contract.SubmissionJSONToEntity(req))
	ordersCreated.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	orderValue.Observe(order.TotalAmount.InexactFloat64())
	utils.WriteJSON(w, contract.OrderEntityToJSON(order), http.StatusCreated)
}

// ListBuyerOrders returns the orders of a buyer, newest first.
// @Summary      List buyer orders
// @Tags         orders
// @Param        user_id  path      int  true  "Buyer id"
// @Success      200  {array}   contract.Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Router       /api/orders/user/{user_id} [get]
func (h *HTTPHandler) ListBuyerOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "user_id")
	if !ok {
		return
	}

	orders, err := h.orders.OrdersByBuyer(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders), http.StatusOK)
}

// ListSellerOrders returns the orders containing products of a seller.
// @Summary      List seller orders
// @Tags         orders
// @Param        seller_id  path      int  true  "Seller id"
// @Success      200  {array}   contract.Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Router       /api/orders/seller/{seller_id} [get]
func (h *HTTPHandler) ListSellerOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "seller_id")
	if !ok {
		return
	}

	orders, err := h.orders.OrdersBySeller(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders), http.StatusOK)
}

// UpdateStatus moves an order through the workflow.
// @Summary      Update order status
// @Tags         orders
// @Param        order_id  path      int                           true  "Order id"
// @Param        request   body      contract.UpdateStatusRequest  true  "Target status and acting seller"
// @Success      200  {object}  contract.Order
// @Failure      403  {object}  utils.ErrorResponse "Seller does not own the order"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed"
// @Router       /api/orders/{order_id}/status [put]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}
	var req contract.UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, req.SellerID, entities.OrderStatus(req.Status))
	statusChanges.WithLabelValues(req.Status, outcome(err)).Inc()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, contract.OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	if err := h.validate.Var(raw, "required,number"); err != nil {
		utils.WriteValidationError(w, err)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteJSON(w, utils.ValidationErrorResponse{
			Message: "invalid request",
			Fields:  map[string]string{name: "gt=0"},
		}, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func ordersToJSON(orders []entities.Order) []contract.Order {
	res := make([]contract.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, contract.OrderEntityToJSON(o))
	}
	return res
}
