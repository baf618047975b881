// Package storefront exposes the storefront sessions over HTTP.
package storefront

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/session"
	"github.com/SergeyBogomolovv/techmarket/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// SessionHeader carries the id returned by POST /sessions.
const SessionHeader = "X-Session-ID"

type Sessions interface {
	Create() *session.Session
	Get(id string) (*session.Session, error)
}

type Catalog interface {
	Search(ctx context.Context, term string) ([]entities.Product, error)
	Categories(ctx context.Context) ([]entities.Category, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	sessions Sessions
	catalog  Catalog
	minTotal decimal.Decimal
}

func NewHTTPHandler(logger *slog.Logger, sessions Sessions, catalog Catalog, minTotal decimal.Decimal) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "storefront")),
		validate: utils.NewValidator(),
		sessions: sessions,
		catalog:  catalog,
		minTotal: minTotal,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/sessions", h.CreateSession)

	r.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/session", h.GetSession)
		r.Put("/session/view", h.Navigate)
		r.Post("/session/register", h.Register)
		r.Post("/session/login", h.Login)
		r.Post("/session/logout", h.Logout)

		r.Get("/catalog/products", h.ListProducts)
		r.Get("/catalog/categories", h.ListCategories)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddToCart)
		r.Put("/cart/items/{product_id}", h.SetQuantity)
		r.Delete("/cart/items/{product_id}", h.RemoveFromCart)
		r.Post("/checkout", h.Checkout)

		r.Get("/orders", h.ListOrders)

		r.Get("/seller/orders", h.ListSellerOrders)
		r.Put("/seller/orders/{order_id}/status", h.Transition)
		r.Post("/seller/products", h.AddProduct)
	})
}

type sessionKey struct{}

func (h *HTTPHandler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := h.sessions.Get(r.Header.Get(SessionHeader))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, s)))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	return r.Context().Value(sessionKey{}).(*session.Session)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	utils.WriteCodedError(w, message, code, status)
}

// CreateSession starts a new anonymous session.
// @Summary      Create session
// @Description  Starts an anonymous session; pass the returned id in the X-Session-ID header
// @Tags         session
// @Success      201  {object}  SessionCreated
// @Router       /sessions [post]
func (h *HTTPHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	utils.WriteJSON(w, SessionCreated{SessionID: s.ID()}, http.StatusCreated)
}

// GetSession returns the state of the session.
// @Summary      Get session
// @Tags         session
// @Param        X-Session-ID  header    string  true  "Session id"
// @Success      200  {object}  SessionState
// @Failure      401  {object}  utils.ErrorResponse "Unknown session"
// @Router       /session [get]
func (h *HTTPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, SessionStateToJSON(sessionFrom(r).State()), http.StatusOK)
}

// Navigate switches the current view.
// @Summary      Switch view
// @Tags         session
// @Param        X-Session-ID  header    string           true  "Session id"
// @Param        request       body      NavigateRequest  true  "View"
// @Success      200  {object}  SessionState
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "View not available to the account"
// @Router       /session/view [put]
func (h *HTTPHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !h.decode(w, r, &req) {
		return
	}

	s := sessionFrom(r)
	if err := s.Navigate(session.View(req.View)); err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, SessionStateToJSON(s.State()), http.StatusOK)
}

// Register creates a marketplace account.
// @Summary      Register
// @Tags         session
// @Param        X-Session-ID  header    string                    true  "Session id"
// @Param        request       body      contract.RegisterRequest  true  "Account data"
// @Success      201
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Email already in use"
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /session/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req contract.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := sessionFrom(r).Register(r.Context(), contract.RegistrationJSONToEntity(req)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Login authenticates the session.
// @Summary      Login
// @Tags         session
// @Param        X-Session-ID  header    string                 true  "Session id"
// @Param        request       body      contract.LoginRequest  true  "Credentials"
// @Success      200  {object}  SessionState
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse "Invalid credentials"
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /session/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req contract.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	s := sessionFrom(r)
	if _, err := s.Login(r.Context(), req.Email, req.Password); err != nil {
		_, code, _ := classify(err)
		loginsTotal.WithLabelValues(outcome(code)).Inc()
		h.writeError(w, r, err)
		return
	}
	loginsTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, SessionStateToJSON(s.State()), http.StatusOK)
}

// Logout clears the account, cart and cached orders of the session.
// @Summary      Logout
// @Tags         session
// @Param        X-Session-ID  header    string  true  "Session id"
// @Success      200  {object}  SessionState
// @Router       /session/logout [post]
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Logout()
	utils.WriteJSON(w, SessionStateToJSON(s.State()), http.StatusOK)
}

// ListProducts returns the catalog, optionally filtered by a search term.
// @Summary      List products
// @Tags         catalog
// @Param        X-Session-ID  header    string  true   "Session id"
// @Param        q             query     string  false  "Search term matched against name and description"
// @Success      200  {array}   CatalogProduct
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /catalog/products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	canBuy := sessionFrom(r).State().Capabilities.CanBuy
	res := make([]CatalogProduct, 0, len(products))
	for _, p := range products {
		res = append(res, CatalogProductToJSON(p, canBuy))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// ListCategories returns the product categories.
// @Summary      List categories
// @Tags         catalog
// @Param        X-Session-ID  header    string  true  "Session id"
// @Success      200  {array}   contract.Category
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /catalog/categories [get]
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, categoriesToJSON(categories), http.StatusOK)
}

// GetCart returns the cart with the proposed shipping address.
// @Summary      Get cart
// @Tags         cart
// @Param        X-Session-ID  header    string  true  "Session id"
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Account cannot buy"
// @Router       /cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := s.Navigate(session.ViewCart); err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, CartToJSON(s.Cart(), h.minTotal, s.DefaultAddress()), http.StatusOK)
}

// AddToCart adds a product to the cart.
// @Summary      Add to cart
// @Tags         cart
// @Param        X-Session-ID  header    string          true  "Session id"
// @Param        request       body      AddItemRequest  true  "Product and quantity"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Account cannot buy"
// @Failure      404  {object}  utils.ErrorResponse "Unknown product"
// @Failure      409  {object}  utils.ErrorResponse "Cart full or product out of stock"
// @Router       /cart/items [post]
func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	s := sessionFrom(r)
	if err := s.AddToCart(r.Context(), req.ProductID, req.Quantity); err != nil {
		h.rejectCartChange(w, r, err)
		return
	}
	utils.WriteJSON(w, CartToJSON(s.Cart(), h.minTotal, s.DefaultAddress()), http.StatusOK)
}

// SetQuantity replaces the quantity of a cart line.
// @Summary      Set quantity
// @Tags         cart
// @Param        X-Session-ID  header    string              true  "Session id"
// @Param        product_id    path      int                 true  "Product id"
// @Param        request       body      SetQuantityRequest  true  "Quantity, zero removes the line"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /cart/items/{product_id} [put]
func (h *HTTPHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.pathID(w, r, "product_id")
	if !ok {
		return
	}
	var req SetQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}

	s := sessionFrom(r)
	if err := s.SetQuantity(productID, req.Quantity); err != nil {
		h.rejectCartChange(w, r, err)
		return
	}
	utils.WriteJSON(w, CartToJSON(s.Cart(), h.minTotal, s.DefaultAddress()), http.StatusOK)
}

// RemoveFromCart drops a cart line.
// @Summary      Remove from cart
// @Tags         cart
// @Param        X-Session-ID  header    string  true  "Session id"
// @Param        product_id    path      int     true  "Product id"
// @Success      200  {object}  Cart
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /cart/items/{product_id} [delete]
func (h *HTTPHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.pathID(w, r, "product_id")
	if !ok {
		return
	}

	s := sessionFrom(r)
	if err := s.RemoveFromCart(productID); err != nil {
		h.rejectCartChange(w, r, err)
		return
	}
	utils.WriteJSON(w, CartToJSON(s.Cart(), h.minTotal, s.DefaultAddress()), http.StatusOK)
}

func (h *HTTPHandler) rejectCartChange(w http.ResponseWriter, r *http.Request, err error) {
	_, code, _ := classify(err)
	cartRejections.WithLabelValues(outcome(code)).Inc()
	h.writeError(w, r, err)
}

// Checkout places an order for the cart.
// @Summary      Checkout
// @Tags         cart
// @Param        X-Session-ID  header    string           true  "Session id"
// @Param        request       body      CheckoutRequest  true  "Shipping address"
// @Success      201  {object}  OrderView
// @Failure      403  {object}  utils.ErrorResponse "Account cannot buy"
// @Failure      409  {object}  utils.ErrorResponse "Insufficient stock"
// @Failure      422  {object}  utils.ErrorResponse "Empty cart, missing address or total below minimum"
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := sessionFrom(r).Checkout(r.Context(), req.ShippingAddress)
	if err != nil {
		_, code, _ := classify(err)
		checkoutsTotal.WithLabelValues(outcome(code)).Inc()
		h.writeError(w, r, err)
		return
	}

	checkoutsTotal.WithLabelValues("ok").Inc()
	checkoutAmount.Observe(order.TotalAmount.InexactFloat64())
	utils.WriteJSON(w, OrderViewToJSON(order, nil), http.StatusCreated)
}

// ListOrders returns the order history of the buyer, newest first.
// @Summary      Order history
// @Tags         orders
// @Param        X-Session-ID  header    string  true   "Session id"
// @Param        refresh       query     bool    false  "Reload from the marketplace"
// @Success      200  {array}   OrderView
// @Failure      403  {object}  utils.ErrorResponse "Account cannot buy"
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := s.Navigate(session.ViewOrders); err != nil {
		h.writeError(w, r, err)
		return
	}
	if r.URL.Query().Get("refresh") == "true" {
		if err := s.ReloadOrders(r.Context()); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	orders, err := s.Orders()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders, nil), http.StatusOK)
}

// ListSellerOrders returns the orders containing products of the seller with the
// transitions available for each.
// @Summary      Seller orders
// @Tags         seller
// @Param        X-Session-ID  header    string  true   "Session id"
// @Param        refresh       query     bool    false  "Reload from the marketplace"
// @Success      200  {array}   OrderView
// @Failure      403  {object}  utils.ErrorResponse "Account cannot sell"
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /seller/orders [get]
func (h *HTTPHandler) ListSellerOrders(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := s.Navigate(session.ViewManageOrders); err != nil {
		h.writeError(w, r, err)
		return
	}
	if r.URL.Query().Get("refresh") == "true" {
		if err := s.ReloadSellerOrders(r.Context()); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	orders, err := s.SellerOrders(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders, s.Account()), http.StatusOK)
}

// Transition moves an order of the seller to a new status.
// @Summary      Change order status
// @Tags         seller
// @Param        X-Session-ID  header    string             true  "Session id"
// @Param        order_id      path      int                true  "Order id"
// @Param        request       body      TransitionRequest  true  "Target status"
// @Success      200  {array}   OrderView
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Not a seller of the order"
// @Failure      404  {object}  utils.ErrorResponse "Unknown order"
// @Failure      409  {object}  utils.ErrorResponse "Transition not permitted"
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /seller/orders/{order_id}/status [put]
func (h *HTTPHandler) Transition(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.pathID(w, r, "order_id")
	if !ok {
		return
	}
	var req TransitionRequest
	if !h.decode(w, r, &req) {
		return
	}

	s := sessionFrom(r)
	if err := s.Transition(r.Context(), orderID, entities.OrderStatus(req.Status)); err != nil {
		_, code, _ := classify(err)
		transitionsTotal.WithLabelValues(outcome(code)).Inc()
		h.writeError(w, r, err)
		return
	}
	transitionsTotal.WithLabelValues("ok").Inc()

	orders, err := s.SellerOrders(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders, s.Account()), http.StatusOK)
}

// AddProduct lists a new product of the seller.
// @Summary      Add product
// @Tags         seller
// @Param        X-Session-ID  header    string             true  "Session id"
// @Param        request       body      AddProductRequest  true  "Product"
// @Success      201  {object}  contract.Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Account cannot sell"
// @Failure      404  {object}  utils.ErrorResponse "Unknown category"
// @Failure      502  {object}  utils.ErrorResponse "Marketplace unavailable"
// @Router       /seller/products [post]
func (h *HTTPHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
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

	s := sessionFrom(r)
	if err := s.Navigate(session.ViewAddProduct); err != nil {
		h.writeError(w, r, err)
		return
	}
	product, err := s.AddProduct(r.Context(), AddProductJSONToEntity(req))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, contract.ProductEntityToJSON(product), http.StatusCreated)
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
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteJSON(w, utils.ValidationErrorResponse{
			Message: "invalid request",
			Fields:  map[string]string{name: "gt=0"},
		}, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
