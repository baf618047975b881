package entities

import "github.com/shopspring/decimal"

type Category struct {
	ID          int64
	Name        string
	Description string
}

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	SellerID    int64
	CategoryID  int64
	ImageURL    string
	Active      bool
}

type NewProduct struct {
	SellerID    int64
	CategoryID  int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
}
