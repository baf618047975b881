package session

import (
	"context"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
)

// Marketplace is the set of remote catalog, account and order operations the
// storefront depends on. Every failure other than rejected credentials wraps
// entities.ErrRemoteFailure.
type Marketplace interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	CreateAccount(ctx context.Context, reg entities.Registration) error
	Authenticate(ctx context.Context, email, password string) (entities.Account, error)
	CreateOrder(ctx context.Context, sub entities.OrderSubmission) (entities.Order, error)
	ListOrdersForBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error)
	ListOrdersForSeller(ctx context.Context, sellerID int64) ([]entities.Order, error)
	SetOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatus, sellerID int64) error
	CreateProduct(ctx context.Context, p entities.NewProduct) (entities.Product, error)
}

type Catalog interface {
	Product(ctx context.Context, productID int64) (entities.Product, error)
	Refresh(ctx context.Context) error
}
