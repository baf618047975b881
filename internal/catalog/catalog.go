// Package catalog serves the product and category listings of the marketplace to the
// storefront from a short lived in-memory copy.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/pkg/cache"
	"golang.org/x/sync/singleflight"
)

const (
	productsKey   = "products"
	categoriesKey = "categories"
)

type Source interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
}

type Service struct {
	logger     *slog.Logger
	source     Source
	products   *cache.LRUCache[[]entities.Product]
	categories *cache.LRUCache[[]entities.Category]
	group      singleflight.Group
}

func New(logger *slog.Logger, source Source, ttl time.Duration) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "catalog")),
		source:     source,
		products:   cache.NewLRUCache[[]entities.Product](1, ttl),
		categories: cache.NewLRUCache[[]entities.Category](1, ttl),
	}
}

// Products returns the active products offered in the marketplace.
func (s *Service) Products(ctx context.Context) ([]entities.Product, error) {
	if products, ok := s.products.Get(productsKey); ok {
		return slices.Clone(products), nil
	}

	products, err := load(s, productsKey, func() ([]entities.Product, error) {
		if products, ok := s.products.Get(productsKey); ok {
			return products, nil
		}
		return s.fetchProducts(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return slices.Clone(products), nil
}

// Search returns the active products whose name or description contains term.
func (s *Service) Search(ctx context.Context, term string) ([]entities.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(products, term), nil
}

// Product looks productID up among the active products, reloading them once if
// it is not known yet.
func (s *Service) Product(ctx context.Context, productID int64) (entities.Product, error) {
	find := func(products []entities.Product) (entities.Product, bool) {
		i := slices.IndexFunc(products, func(p entities.Product) bool { return p.ID == productID })
		if i < 0 {
			return entities.Product{}, false
		}
		return products[i], true
	}

	products, err := s.Products(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	if p, ok := find(products); ok {
		return p, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return entities.Product{}, err
	}
	products, err = s.Products(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	if p, ok := find(products); ok {
		return p, nil
	}
	return entities.Product{}, entities.ErrProductNotFound
}

func (s *Service) Categories(ctx context.Context) ([]entities.Category, error) {
	if categories, ok := s.categories.Get(categoriesKey); ok {
		return slices.Clone(categories), nil
	}

	categories, err := load(s, categoriesKey, func() ([]entities.Category, error) {
		if categories, ok := s.categories.Get(categoriesKey); ok {
			return categories, nil
		}
		categories, err := s.source.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		s.categories.Set(categoriesKey, categories)
		return categories, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return slices.Clone(categories), nil
}

// Refresh reloads the products. The cached listing is replaced only when the
// reload succeeds.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := load(s, productsKey+":refresh", func() ([]entities.Product, error) {
		return s.fetchProducts(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to refresh products: %w", err)
	}
	return nil
}

func (s *Service) fetchProducts(ctx context.Context) ([]entities.Product, error) {
	all, err := s.source.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	active := slices.DeleteFunc(all, func(p entities.Product) bool { return !p.Active })
	s.products.Set(productsKey, active)
	s.logger.DebugContext(ctx, "products loaded", slog.Int("count", len(active)))
	return active, nil
}

func load[T any](s *Service, key string, fn func() (T, error)) (T, error) {
	v, err, _ := s.group.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Filter keeps the products whose name or description contains term, ignoring case.
// A blank term keeps everything.
func Filter(products []entities.Product, term string) []entities.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}
