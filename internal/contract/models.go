// Package contract holds the JSON documents exchanged with the marketplace API.
package contract

import (
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/shopspring/decimal"
)

// Category of products
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Product offered by a seller
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"129.90"`
	Stock       int             `json:"stock"`
	SellerID    int64           `json:"seller_id"`
	CategoryID  int64           `json:"category_id"`
	ImageURL    string          `json:"image_url,omitempty"`
	Active      bool            `json:"is_active"`
}

// CreateProductRequest lists a new product
type CreateProductRequest struct {
	SellerID    int64           `json:"seller_id" validate:"required,gt=0"`
	CategoryID  int64           `json:"category_id" validate:"required,gt=0"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"129.90"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url,omitempty" validate:"omitempty,url"`
}

// RegisterRequest creates an account
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Role      string `json:"role" validate:"required,oneof=BUYER SELLER BOTH"`
}

// LoginRequest carries the credentials of an account
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Account without credentials
type Account struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Role      string `json:"role"`
}

// OrderItemRequest is one line of a new order
type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0,lte=1000"`
}

// CreateOrderRequest submits the cart of a buyer
type CreateOrderRequest struct {
	BuyerID         int64              `json:"buyer_id" validate:"required,gt=0"`
	TotalAmount     decimal.Decimal    `json:"total_amount" swaggertype:"string" example:"70.00"`
	ShippingAddress string             `json:"shipping_address" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItem of a placed order
type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	SellerID    int64           `json:"seller_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// Order placed by a buyer
type Order struct {
	ID              int64           `json:"id"`
	BuyerID         int64           `json:"buyer_id"`
	BuyerName       string          `json:"buyer_name,omitempty"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"total_amount" swaggertype:"string"`
	ShippingAddress string          `json:"shipping_address"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// UpdateStatusRequest moves an order through the workflow on behalf of a seller
type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	SellerID int64  `json:"seller_id" validate:"required,gt=0"`
}

// OrderEvent is the message published on the order events topic
type OrderEvent struct {
	Type       string    `json:"type" validate:"required,oneof=order.created order.status_changed"`
	OrderID    int64     `json:"order_id" validate:"required,gt=0"`
	BuyerID    int64     `json:"buyer_id" validate:"required,gt=0"`
	SellerIDs  []int64   `json:"seller_ids"`
	Status     string    `json:"status" validate:"required"`
	OccurredAt time.Time `json:"occurred_at"`
}

func CategoryEntityToJSON(c entities.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func CategoryJSONToEntity(c Category) entities.Category {
	return entities.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		SellerID:    p.SellerID,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		Active:      p.Active,
	}
}

func ProductJSONToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		SellerID:    p.SellerID,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		Active:      p.Active,
	}
}

func NewProductEntityToJSON(p entities.NewProduct) CreateProductRequest {
	return CreateProductRequest{
		SellerID:    p.SellerID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

func NewProductJSONToEntity(p CreateProductRequest) entities.NewProduct {
	return entities.NewProduct{
		SellerID:    p.SellerID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

func RegistrationEntityToJSON(r entities.Registration) RegisterRequest {
	return RegisterRequest{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Address:   r.Address,
		Role:      string(r.Role),
	}
}

func RegistrationJSONToEntity(r RegisterRequest) entities.Registration {
	return entities.Registration{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Address:   r.Address,
		Role:      entities.Role(r.Role),
	}
}

func AccountEntityToJSON(a entities.Account) Account {
	return Account{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Phone:     a.Phone,
		Address:   a.Address,
		Role:      string(a.Role),
	}
}

func AccountJSONToEntity(a Account) entities.Account {
	return entities.Account{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Phone:     a.Phone,
		Address:   a.Address,
		Role:      entities.Role(a.Role),
	}
}

func SubmissionEntityToJSON(s entities.OrderSubmission) CreateOrderRequest {
	items := make([]OrderItemRequest, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	return CreateOrderRequest{
		BuyerID:         s.BuyerID,
		TotalAmount:     s.TotalAmount,
		ShippingAddress: s.ShippingAddress,
		Items:           items,
	}
}

func SubmissionJSONToEntity(r CreateOrderRequest) entities.OrderSubmission {
	items := make([]entities.SubmissionItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.SubmissionItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	return entities.OrderSubmission{
		BuyerID:         r.BuyerID,
		TotalAmount:     r.TotalAmount,
		ShippingAddress: r.ShippingAddress,
		Items:           items,
	}
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		SellerID:    i.SellerID,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		Subtotal:    i.Subtotal,
	}
}

func OrderItemJSONToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		SellerID:    i.SellerID,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		Subtotal:    i.Subtotal,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		BuyerName:       o.BuyerName,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}
}

func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemJSONToEntity(it))
	}

	return entities.Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		BuyerName:       o.BuyerName,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Status:          entities.OrderStatus(o.Status),
		CreatedAt:       o.CreatedAt,
	}
}

func OrderEventEntityToJSON(e entities.OrderEvent) OrderEvent {
	return OrderEvent{
		Type:       string(e.Type),
		OrderID:    e.OrderID,
		BuyerID:    e.BuyerID,
		SellerIDs:  e.SellerIDs,
		Status:     string(e.Status),
		OccurredAt: e.OccurredAt,
	}
}

func OrderEventJSONToEntity(e OrderEvent) entities.OrderEvent {
	return entities.OrderEvent{
		Type:       entities.OrderEventType(e.Type),
		OrderID:    e.OrderID,
		BuyerID:    e.BuyerID,
		SellerIDs:  e.SellerIDs,
		Status:     entities.OrderStatus(e.Status),
		OccurredAt: e.OccurredAt,
	}
}
