package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/policy"
	"github.com/SergeyBogomolovv/techmarket/pkg/utils"
)

type CatalogRepo interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetCategory(ctx context.Context, id int64) (entities.Category, error)
	ListActiveProducts(ctx context.Context) ([]entities.Product, error)
	CreateProduct(ctx context.Context, p entities.NewProduct) (entities.Product, error)
}

type catalogService struct {
	logger   *slog.Logger
	repo     CatalogRepo
	accounts AccountRepo
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo, accounts AccountRepo) *catalogService {
	return &catalogService{
		logger:   logger.With(slog.String("service", "catalog")),
		repo:     repo,
		accounts: accounts,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	fn := func() error {
		var err error
		categories, err = s.repo.ListCategories(ctx)
		return err
	}
	if err := utils.RetryContext(ctx, utils.DefaultRetryConfig, fn); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	fn := func() error {
		var err error
		products, err = s.repo.ListActiveProducts(ctx)
		return err
	}
	if err := utils.RetryContext(ctx, utils.DefaultRetryConfig, fn); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// CreateProduct lists a product for a seller account in an existing category.
func (s *catalogService) CreateProduct(ctx context.Context, p entities.NewProduct) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Stock < 0 {
		return entities.Product{}, entities.ErrInvalidQuantity
	}

	seller, err := s.accounts.AccountByID(ctx, p.SellerID)
	if err != nil {
		return entities.Product{}, err
	}
	if err := policy.RequireSell(&seller); err != nil {
		return entities.Product{}, err
	}

	if _, err := s.repo.GetCategory(ctx, p.CategoryID); err != nil {
		return entities.Product{}, err
	}

	product, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("product created", slog.Int64("product_id", product.ID), slog.Int64("seller_id", product.SellerID))
	return product, nil
}
