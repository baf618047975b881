package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/checkout"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/pkg/cache"
	"github.com/google/uuid"
)

// Registry keeps live sessions by id and expires the ones left idle for longer
// than the configured ttl.
type Registry struct {
	logger    *slog.Logger
	market    Marketplace
	catalog   Catalog
	validator *checkout.Validator
	sessions  *cache.LRUCache[*Session]
}

func NewRegistry(logger *slog.Logger, market Marketplace, catalog Catalog, validator *checkout.Validator, capacity int, ttl time.Duration) *Registry {
	r := &Registry{
		logger:    logger,
		market:    market,
		catalog:   catalog,
		validator: validator,
		sessions:  cache.NewLRUCache[*Session](capacity, ttl),
	}
	r.sessions.OnEvict(func(id string, s *Session) {
		s.Reset()
		r.logger.Debug("session expired", slog.String("session_id", id))
	})
	return r
}

// Start runs the expiration janitor until ctx is done.
func (r *Registry) Start(ctx context.Context) error {
	return r.sessions.Start(ctx)
}

func (r *Registry) Create() *Session {
	s := New(uuid.NewString(), r.logger, r.market, r.catalog, r.validator)
	r.sessions.Set(s.ID(), s)
	return s
}

// Get returns a live session and extends its lifetime.
func (r *Registry) Get(id string) (*Session, error) {
	s, ok := r.sessions.Touch(id)
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id string) {
	if s, ok := r.sessions.Get(id); ok {
		s.Reset()
	}
	r.sessions.Delete(id)
}

func (r *Registry) Len() int {
	return r.sessions.Size()
}

// ForAccount returns the live sessions in which accountID is logged in.
func (r *Registry) ForAccount(accountID int64) []*Session {
	var out []*Session
	for _, s := range r.sessions.Values() {
		if account := s.Account(); account != nil && account.ID == accountID {
			out = append(out, s)
		}
	}
	return out
}

// HandleOrderEvent refreshes every live session of the buyer and sellers named by ev.
func (r *Registry) HandleOrderEvent(ctx context.Context, ev entities.OrderEvent) error {
	ids := append([]int64{ev.BuyerID}, ev.SellerIDs...)
	seen := make(map[string]struct{})

	var errs []error
	for _, id := range ids {
		for _, s := range r.ForAccount(id) {
			if _, ok := seen[s.ID()]; ok {
				continue
			}
			seen[s.ID()] = struct{}{}
			errs = append(errs, s.HandleOrderEvent(ctx, ev))
		}
	}
	return errors.Join(errs...)
}
