package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}

type Product struct {
	ID          int64           `db:"id"`
	SellerID    int64           `db:"seller_id"`
	CategoryID  int64           `db:"category_id"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	ImageURL    sql.NullString  `db:"image_url"`
	IsActive    bool            `db:"is_active"`
}

type Account struct {
	ID           int64          `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Phone        sql.NullString `db:"phone"`
	Address      sql.NullString `db:"address"`
	Role         string         `db:"role"`
}

type Order struct {
	ID              int64           `db:"id"`
	BuyerID         int64           `db:"buyer_id"`
	BuyerFirstName  string          `db:"first_name"`
	BuyerLastName   string          `db:"last_name"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	ShippingAddress string          `db:"shipping_address"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderID     int64           `db:"order_id"`
	ProductID   int64           `db:"product_id"`
	ProductName string          `db:"name"`
	SellerID    int64           `db:"seller_id"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}

func CategoryToEntity(c Category) entities.Category {
	return entities.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description.String,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description.String,
		Price:       p.Price,
		Stock:       p.Stock,
		SellerID:    p.SellerID,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL.String,
		Active:      p.IsActive,
	}
}

func AccountToEntity(a Account) entities.Account {
	return entities.Account{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Phone:     a.Phone.String,
		Address:   a.Address.String,
		Role:      entities.Role(a.Role),
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	buyer := entities.Account{FirstName: o.BuyerFirstName, LastName: o.BuyerLastName}
	res := entities.Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		BuyerName:       buyer.FullName(),
		Items:           make([]entities.OrderItem, 0, len(items)),
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Status:          entities.OrderStatus(o.Status),
		CreatedAt:       o.CreatedAt,
	}
	for _, it := range items {
		res.Items = append(res.Items, entities.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SellerID:    it.SellerID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return res
}
