// Package marketplace is the HTTP client of the marketplace catalog, account and order
// APIs used by the storefront.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/techmarket/internal/config"
	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/pkg/utils"
)

// errPermanent marks failures that another attempt cannot fix.
var errPermanent = errors.New("permanent failure")

// APIError is a non-2xx answer of the marketplace.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// Is reports client errors as permanent so they are not retried.
func (e *APIError) Is(target error) bool {
	return target == errPermanent && e.StatusCode < http.StatusInternalServerError
}

// RemoteError is returned for every failed call. It matches entities.ErrRemoteFailure
// and, when the marketplace reported a known reason, the corresponding entities error.
type RemoteError struct {
	Op     string
	Reason error
	Err    error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("marketplace %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() []error {
	errs := []error{entities.ErrRemoteFailure}
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	return append(errs, e.Err)
}

type Client struct {
	logger  *slog.Logger
	baseURL string
	http    *http.Client
	retry   utils.RetryConfig
}

func NewClient(logger *slog.Logger, cfg config.MarketplaceAPI) *Client {
	retry := utils.DefaultRetryConfig
	if cfg.RetryAttempts > 0 {
		retry.MaxAttempts = cfg.RetryAttempts
	}
	if cfg.RetryDelay > 0 {
		retry.InitialDelay = cfg.RetryDelay
	}

	return &Client{
		logger:  logger.With(slog.String("service", "marketplace_client")),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		retry:   retry,
	}
}

func (c *Client) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var res []contract.Category
	if err := c.do(ctx, "list categories", http.MethodGet, "/api/categories", nil, &res); err != nil {
		return nil, err
	}

	categories := make([]entities.Category, 0, len(res))
	for _, cat := range res {
		categories = append(categories, contract.CategoryJSONToEntity(cat))
	}
	return categories, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]entities.Product, error) {
	var res []contract.Product
	if err := c.do(ctx, "list products", http.MethodGet, "/api/products", nil, &res); err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(res))
	for _, p := range res {
		products = append(products, contract.ProductJSONToEntity(p))
	}
	return products, nil
}

func (c *Client) CreateAccount(ctx context.Context, reg entities.Registration) error {
	return c.do(ctx, "create account", http.MethodPost, "/api/users", contract.RegistrationEntityToJSON(reg), nil)
}

// Authenticate returns entities.ErrInvalidCredentials, and nothing else, when the
// marketplace rejects the credentials.
func (c *Client) Authenticate(ctx context.Context, email, password string) (entities.Account, error) {
	var res contract.Account
	req := contract.LoginRequest{Email: email, Password: password}

	err := c.do(ctx, "authenticate", http.MethodPost, "/api/users/login", req, &res)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return entities.Account{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.Account{}, err
	}
	return contract.AccountJSONToEntity(res), nil
}

func (c *Client) CreateOrder(ctx context.Context, sub entities.OrderSubmission) (entities.Order, error) {
	var res contract.Order
	if err := c.do(ctx, "create order", http.MethodPost, "/api/orders", contract.SubmissionEntityToJSON(sub), &res); err != nil {
		return entities.Order{}, err
	}
	return contract.OrderJSONToEntity(res), nil
}

func (c *Client) ListOrdersForBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error) {
	return c.listOrders(ctx, "list buyer orders", fmt.Sprintf("/api/orders/user/%d", buyerID))
}

func (c *Client) ListOrdersForSeller(ctx context.Context, sellerID int64) ([]entities.Order, error) {
	return c.listOrders(ctx, "list seller orders", fmt.Sprintf("/api/orders/seller/%d", sellerID))
}

func (c *Client) listOrders(ctx context.Context, op, path string) ([]entities.Order, error) {
	var res []contract.Order
	if err := c.do(ctx, op, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(res))
	for _, o := range res {
		orders = append(orders, contract.OrderJSONToEntity(o))
	}
	return orders, nil
}

func (c *Client) SetOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatus, sellerID int64) error {
	req := contract.UpdateStatusRequest{Status: string(status), SellerID: sellerID}
	return c.do(ctx, "set order status", http.MethodPut, fmt.Sprintf("/api/orders/%d/status", orderID), req, nil)
}

func (c *Client) CreateProduct(ctx context.Context, p entities.NewProduct) (entities.Product, error) {
	var res contract.Product
	if err := c.do(ctx, "create product", http.MethodPost, "/api/products", contract.NewProductEntityToJSON(p), &res); err != nil {
		return entities.Product{}, err
	}
	return contract.ProductJSONToEntity(res), nil
}

// do performs one call. Reads are retried on transport errors and 5xx answers;
// writes are sent once.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &RemoteError{Op: op, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		body = b
	}

	call := func() error {
		return c.roundTrip(ctx, method, path, body, out)
	}

	var err error
	if method == http.MethodGet {
		err = utils.RetryContext(ctx, c.retry, call, errPermanent)
	} else {
		err = call()
	}
	if err == nil {
		return nil
	}

	c.logger.DebugContext(ctx, "marketplace call failed",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Any("error", err),
	)

	remote := &RemoteError{Op: op, Err: err}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if reason, ok := contract.CodeError(apiErr.Code); ok {
			remote.Reason = reason
		}
	}
	return remote
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var payload utils.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
			apiErr.Code = payload.Code
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
