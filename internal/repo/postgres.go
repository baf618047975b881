package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var productColumns = []string{
	"id", "seller_id", "category_id", "name", "description",
	"price", "stock", "image_url", "is_active",
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]entities.Category, error) {
	query, args := r.qb.Select("id", "name", "description").
		From("categories").
		OrderBy("name").
		MustSql()

	var categories []Category
	if err := r.selectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	res := make([]entities.Category, 0, len(categories))
	for _, c := range categories {
		res = append(res, CategoryToEntity(c))
	}
	return res, nil
}

func (r *postgresRepo) GetCategory(ctx context.Context, id int64) (entities.Category, error) {
	query, args := r.qb.Select("id", "name", "description").
		From("categories").
		Where(sq.Eq{"id": id}).
		MustSql()

	var category Category
	err := r.getContext(ctx, &category, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return CategoryToEntity(category), nil
}

// ListActiveProducts hides delisted products.
func (r *postgresRepo) ListActiveProducts(ctx context.Context) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"is_active": true}).
		OrderBy("id").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	return productsToEntity(products), nil
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.NewProduct) (entities.Product, error) {
	query, args := r.qb.Insert("products").
		Columns("seller_id", "category_id", "name", "description", "price", "stock", "image_url").
		Values(
			p.SellerID, p.CategoryID, p.Name, nullString(p.Description),
			p.Price, p.Stock, nullString(p.ImageURL),
		).
		Suffix("RETURNING " + joinColumns(productColumns)).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if isViolation(err, foreignKeyViolation) {
		return entities.Product{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return ProductToEntity(product), nil
}

// LockProducts selects the given products FOR UPDATE. It must run inside a
// transaction; rows are locked in id order so concurrent checkouts cannot deadlock.
func (r *postgresRepo) LockProducts(ctx context.Context, ids []int64) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}
	return productsToEntity(products), nil
}

func (r *postgresRepo) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if n == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

func (r *postgresRepo) CreateAccount(ctx context.Context, reg entities.Registration, passwordHash string) (entities.Account, error) {
	query, args := r.qb.Insert("users").
		Columns("email", "password_hash", "first_name", "last_name", "phone", "address", "role").
		Values(
			reg.Email, passwordHash, reg.FirstName, reg.LastName,
			nullString(reg.Phone), nullString(reg.Address), string(reg.Role),
		).
		Suffix("RETURNING id, email, password_hash, first_name, last_name, phone, address, role").
		MustSql()

	var account Account
	err := r.getContext(ctx, &account, query, args...)
	if isViolation(err, uniqueViolation) {
		return entities.Account{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}
	return AccountToEntity(account), nil
}

// AccountByEmail returns the account together with its password hash.
func (r *postgresRepo) AccountByEmail(ctx context.Context, email string) (entities.Account, string, error) {
	query, args := r.qb.Select("id", "email", "password_hash", "first_name", "last_name", "phone", "address", "role").
		From("users").
		Where(sq.Eq{"email": email}).
		MustSql()

	var account Account
	err := r.getContext(ctx, &account, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Account{}, "", entities.ErrAccountNotFound
	}
	if err != nil {
		return entities.Account{}, "", fmt.Errorf("failed to get account: %w", err)
	}
	return AccountToEntity(account), account.PasswordHash, nil
}

func (r *postgresRepo) AccountByID(ctx context.Context, id int64) (entities.Account, error) {
	query, args := r.qb.Select("id", "email", "password_hash", "first_name", "last_name", "phone", "address", "role").
		From("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	var account Account
	err := r.getContext(ctx, &account, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Account{}, entities.ErrAccountNotFound
	}
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return AccountToEntity(account), nil
}

// SaveOrder inserts the order with its items and returns it with the generated
// id and creation time.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("buyer_id", "total_amount", "shipping_address", "status").
		Values(o.BuyerID, o.TotalAmount, o.ShippingAddress, string(o.Status)).
		Suffix("RETURNING id, created_at").
		MustSql()

	var created struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.getContext(ctx, &created, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	o.ID = created.ID
	o.CreatedAt = created.CreatedAt

	if len(o.Items) == 0 {
		return o, nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "seller_id", "quantity", "unit_price")
	for _, it := range o.Items {
		q = q.Values(o.ID, it.ProductID, it.SellerID, it.Quantity, it.UnitPrice)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order items: %w", err)
	}
	return o, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, id, false)
}

// LockOrder selects the order FOR UPDATE. It must run inside a transaction.
func (r *postgresRepo) LockOrder(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, id, true)
}

func (r *postgresRepo) getOrder(ctx context.Context, id int64, lock bool) (entities.Order, error) {
	q := r.orderQuery().Where(sq.Eq{"o.id": id})
	if lock {
		q = q.Suffix("FOR UPDATE OF o")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, []int64{id})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items[id]), nil
}

func (r *postgresRepo) OrdersByBuyer(ctx context.Context, buyerID int64) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"o.buyer_id": buyerID})
}

// OrdersBySeller returns the orders containing at least one product of the seller.
func (r *postgresRepo) OrdersBySeller(ctx context.Context, sellerID int64) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Expr("o.id IN (SELECT order_id FROM order_items WHERE seller_id = ?)", sellerID))
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, id int64, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) orderQuery() sq.SelectBuilder {
	return r.qb.Select(
		"o.id", "o.buyer_id", "u.first_name", "u.last_name",
		"o.total_amount", "o.shipping_address", "o.status", "o.created_at",
	).
		From("orders o").
		Join("users u ON u.id = o.buyer_id")
}

func (r *postgresRepo) listOrders(ctx context.Context, pred sq.Sqlizer) ([]entities.Order, error) {
	query, args := r.orderQuery().
		Where(pred).
		OrderBy("o.created_at DESC", "o.id DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := r.orderItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderToEntity(o, items[o.ID]))
	}
	return res, nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	query, args := r.qb.Select(
		"oi.order_id", "oi.product_id", "p.name", "oi.seller_id", "oi.quantity", "oi.unit_price",
	).
		From("order_items oi").
		Join("products p ON p.id = oi.product_id").
		Where(sq.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	res := make(map[int64][]OrderItem, len(orderIDs))
	for _, it := range items {
		res[it.OrderID] = append(res[it.OrderID], it)
	}
	return res, nil
}

func productsToEntity(products []Product) []entities.Product {
	res := make([]entities.Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductToEntity(p))
	}
	return res
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func isViolation(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
