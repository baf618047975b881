// Package session holds the state of one storefront visitor: the logged in account,
// the cart and cached order lists, and orchestrates remote calls on their behalf.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/cart"
	"github.com/SergeyBogomolovv/techmarket/internal/checkout"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/policy"
	"github.com/SergeyBogomolovv/techmarket/internal/workflow"
	"golang.org/x/sync/errgroup"
)

const backgroundTimeout = 10 * time.Second

type View string

const (
	ViewLogin        View = "login"
	ViewHome         View = "home"
	ViewCart         View = "cart"
	ViewOrders       View = "orders"
	ViewManageOrders View = "manage_orders"
	ViewAddProduct   View = "add_product"
)

// State is a consistent copy of the session used for rendering.
type State struct {
	ID           string
	Account      *entities.Account
	Capabilities policy.Capabilities
	View         View
	Cart         cart.Snapshot
}

type Session struct {
	id        string
	logger    *slog.Logger
	market    Marketplace
	catalog   Catalog
	validator *checkout.Validator

	mu           sync.Mutex
	account      *entities.Account
	cart         *cart.Cart
	view         View
	orders       []entities.Order
	sellerOrders []entities.Order
	sellerLoaded bool
	// generation changes on every Start and Reset so results of calls issued for a
	// previous account are dropped.
	generation uint64

	bg sync.WaitGroup
}

func New(id string, logger *slog.Logger, market Marketplace, catalog Catalog, validator *checkout.Validator) *Session {
	return &Session{
		id:        id,
		logger:    logger.With(slog.String("service", "session"), slog.String("session_id", id)),
		market:    market,
		catalog:   catalog,
		validator: validator,
		cart:      cart.New(),
		view:      ViewLogin,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Start begins the lifetime of account in this session.
func (s *Session) Start(account entities.Account) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.account = &account
	s.cart = cart.New()
	s.view = ViewHome
	s.orders = nil
	s.sellerOrders = nil
	s.sellerLoaded = false
	s.mu.Unlock()

	s.logger.Info("session started", slog.Int64("account_id", account.ID), slog.String("role", string(account.Role)))

	if policy.For(&account).CanBuy {
		s.reloadOrdersAsync(gen)
	}
}

// Reset drops the account together with the cart and every cached order list.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.account = nil
	s.cart = cart.New()
	s.view = ViewLogin
	s.orders = nil
	s.sellerOrders = nil
	s.sellerLoaded = false
}

// Wait blocks until background reloads started by the session finish.
func (s *Session) Wait() {
	s.bg.Wait()
}

func (s *Session) Account() *entities.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentAccount()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.currentAccount()
	return State{
		ID:           s.id,
		Account:      account,
		Capabilities: policy.For(account),
		View:         s.view,
		Cart:         s.cart.Snapshot(),
	}
}

// DefaultAddress is the shipping address proposed at checkout.
func (s *Session) DefaultAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return ""
	}
	return s.account.Address
}

// Navigate switches the current view if the account may see it.
func (s *Session) Navigate(view View) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := canView(s.account, view); err != nil {
		return err
	}
	s.view = view
	return nil
}

func canView(account *entities.Account, view View) error {
	switch view {
	case ViewLogin:
		return nil
	case ViewHome:
		if account == nil {
			return entities.ErrUnauthenticated
		}
		return nil
	case ViewCart, ViewOrders:
		return policy.RequireBuy(account)
	case ViewManageOrders, ViewAddProduct:
		return policy.RequireSell(account)
	}
	return fmt.Errorf("unknown view %q", view)
}

func (s *Session) Login(ctx context.Context, email, password string) (entities.Account, error) {
	account, err := s.market.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.WarnContext(ctx, "login failed", slog.Any("error", err))
		return entities.Account{}, err
	}
	s.Start(account)
	return account, nil
}

func (s *Session) Logout() {
	s.Reset()
	s.logger.Info("session reset")
}

func (s *Session) Register(ctx context.Context, reg entities.Registration) error {
	if err := s.market.CreateAccount(ctx, reg); err != nil {
		s.logger.WarnContext(ctx, "registration failed", slog.Any("error", err))
		return err
	}
	return nil
}

func (s *Session) AddToCart(ctx context.Context, productID int64, qty int) error {
	if err := policy.RequireBuy(s.Account()); err != nil {
		return err
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return err
	}
	if product.Stock <= 0 {
		return entities.ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := policy.RequireBuy(s.account); err != nil {
		return err
	}
	return s.cart.Add(product, qty)
}

func (s *Session) SetQuantity(productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := policy.RequireBuy(s.account); err != nil {
		return err
	}
	return s.cart.SetQuantity(productID, qty)
}

func (s *Session) RemoveFromCart(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := policy.RequireBuy(s.account); err != nil {
		return err
	}
	s.cart.Remove(productID)
	return nil
}

func (s *Session) Cart() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// Checkout validates and submits the cart as it is at the moment of the call.
// Validation failures never reach the network and remote failures leave the
// session untouched.
func (s *Session) Checkout(ctx context.Context, address string) (entities.Order, error) {
	s.mu.Lock()
	account := s.currentAccount()
	snap := s.cart.Snapshot()
	gen := s.generation
	s.mu.Unlock()

	sub, err := s.validator.Validate(snap, address, account)
	if err != nil {
		return entities.Order{}, err
	}

	order, err := s.market.CreateOrder(ctx, sub)
	if err != nil {
		s.logger.WarnContext(ctx, "order submission failed", slog.Any("error", err))
		return entities.Order{}, err
	}

	s.mu.Lock()
	if s.generation == gen {
		s.cart.Subtract(snap.Lines)
		s.view = ViewOrders
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "order placed",
		slog.Int64("order_id", order.ID),
		slog.String("total", order.TotalAmount.StringFixed(2)),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.catalog.Refresh(gctx); err != nil {
			s.logger.WarnContext(ctx, "failed to refresh catalog", slog.Any("error", err))
		}
		return nil
	})
	g.Go(func() error {
		if err := s.reloadOrders(gctx, gen); err != nil {
			s.logger.WarnContext(ctx, "failed to reload orders", slog.Any("error", err))
		}
		return nil
	})
	_ = g.Wait()

	return order, nil
}

// Orders returns the cached order history of the buyer.
func (s *Session) Orders() ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := policy.RequireBuy(s.account); err != nil {
		return nil, err
	}
	return slices.Clone(s.orders), nil
}

// ReloadOrders replaces the cached order history with the one held by the
// marketplace. On failure the cache keeps its previous content.
func (s *Session) ReloadOrders(ctx context.Context) error {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()
	return s.reloadOrders(ctx, gen)
}

func (s *Session) reloadOrders(ctx context.Context, gen uint64) error {
	s.mu.Lock()
	account := s.currentAccount()
	stale := s.generation != gen
	s.mu.Unlock()

	if stale {
		return nil
	}
	if err := policy.RequireBuy(account); err != nil {
		return err
	}

	orders, err := s.market.ListOrdersForBuyer(ctx, account.ID)
	if err != nil {
		return err
	}
	sortNewestFirst(orders)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.orders = orders
	}
	return nil
}

func (s *Session) reloadOrdersAsync(gen uint64) {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		if err := s.reloadOrders(ctx, gen); err != nil {
			s.logger.Warn("failed to load order history", slog.Any("error", err))
		}
	}()
}

// SellerOrders returns the orders containing products of the seller, loading them
// on first use.
func (s *Session) SellerOrders(ctx context.Context) ([]entities.Order, error) {
	s.mu.Lock()
	if err := policy.RequireSell(s.account); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.sellerLoaded {
		orders := slices.Clone(s.sellerOrders)
		s.mu.Unlock()
		return orders, nil
	}
	s.mu.Unlock()

	if err := s.ReloadSellerOrders(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sellerOrders), nil
}

func (s *Session) ReloadSellerOrders(ctx context.Context) error {
	s.mu.Lock()
	account := s.currentAccount()
	gen := s.generation
	s.mu.Unlock()

	if err := policy.RequireSell(account); err != nil {
		return err
	}

	orders, err := s.market.ListOrdersForSeller(ctx, account.ID)
	if err != nil {
		return err
	}
	sortNewestFirst(orders)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.sellerOrders = orders
		s.sellerLoaded = true
	}
	return nil
}

// Transition asks the marketplace to move an order of the seller to status. The
// cached list is refreshed from the marketplace afterwards whatever the outcome;
// it is never updated speculatively.
func (s *Session) Transition(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	s.mu.Lock()
	account := s.currentAccount()
	s.mu.Unlock()

	if err := policy.RequireSell(account); err != nil {
		return err
	}

	order, err := s.sellerOrder(ctx, orderID)
	if err != nil {
		return err
	}

	step, err := workflow.Request(account, order, status)
	if err != nil {
		return err
	}

	remoteErr := s.market.SetOrderStatus(ctx, orderID, status, account.ID)
	if err := s.ReloadSellerOrders(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to refresh seller orders", slog.Any("error", err))
	}
	if remoteErr != nil {
		s.logger.WarnContext(ctx, "order transition failed",
			slog.Int64("order_id", orderID),
			slog.String("action", string(step.Action)),
			slog.Any("error", remoteErr),
		)
		return remoteErr
	}

	s.logger.InfoContext(ctx, "order transitioned",
		slog.Int64("order_id", orderID),
		slog.String("action", string(step.Action)),
		slog.String("status", string(status)),
	)
	return nil
}

func (s *Session) sellerOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	find := func() (entities.Order, bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := slices.IndexFunc(s.sellerOrders, func(o entities.Order) bool { return o.ID == orderID })
		if i < 0 {
			return entities.Order{}, false
		}
		return s.sellerOrders[i], true
	}

	if order, ok := find(); ok {
		return order, nil
	}
	if err := s.ReloadSellerOrders(ctx); err != nil {
		return entities.Order{}, err
	}
	if order, ok := find(); ok {
		return order, nil
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

// AddProduct lists a new product owned by the seller of this session.
func (s *Session) AddProduct(ctx context.Context, p entities.NewProduct) (entities.Product, error) {
	account := s.Account()
	if err := policy.RequireSell(account); err != nil {
		return entities.Product{}, err
	}
	p.SellerID = account.ID

	product, err := s.market.CreateProduct(ctx, p)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create product", slog.Any("error", err))
		return entities.Product{}, err
	}
	if err := s.catalog.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to refresh catalog", slog.Any("error", err))
	}
	return product, nil
}

// HandleOrderEvent refreshes the cached lists touched by an order change.
func (s *Session) HandleOrderEvent(ctx context.Context, ev entities.OrderEvent) error {
	s.mu.Lock()
	account := s.currentAccount()
	sellerLoaded := s.sellerLoaded
	s.mu.Unlock()

	if account == nil {
		return nil
	}

	var errs []error
	if account.ID == ev.BuyerID && policy.For(account).CanBuy {
		errs = append(errs, s.ReloadOrders(ctx))
	}
	if sellerLoaded && slices.Contains(ev.SellerIDs, account.ID) {
		errs = append(errs, s.ReloadSellerOrders(ctx))
	}
	return errors.Join(errs...)
}

func (s *Session) currentAccount() *entities.Account {
	if s.account == nil {
		return nil
	}
	account := *s.account
	return &account
}

func sortNewestFirst(orders []entities.Order) {
	slices.SortStableFunc(orders, func(a, b entities.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
