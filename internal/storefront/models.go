package storefront

import (
	"github.com/SergeyBogomolovv/techmarket/internal/cart"
	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/session"
	"github.com/SergeyBogomolovv/techmarket/internal/workflow"
	"github.com/shopspring/decimal"
)

// SessionCreated identifies a new storefront session
type SessionCreated struct {
	SessionID string `json:"session_id"`
}

// SessionState describes who is logged in and what they may do
type SessionState struct {
	SessionID string            `json:"session_id"`
	Account   *contract.Account `json:"account,omitempty"`
	View      string            `json:"view"`
	CanBuy    bool              `json:"can_buy"`
	CanSell   bool              `json:"can_sell"`
	CartLines int               `json:"cart_lines"`
}

// NavigateRequest switches the current view
type NavigateRequest struct {
	View string `json:"view" validate:"required,oneof=login home cart orders manage_orders add_product"`
}

// CatalogProduct is a product with the add-to-cart availability of the current account
type CatalogProduct struct {
	contract.Product
	CanAdd bool `json:"can_add"`
}

// AddItemRequest puts a product into the cart
type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0,lte=1000"`
}

// SetQuantityRequest replaces the quantity of a cart line; zero removes it
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=1000"`
}

// CartLine is one product in the cart
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// Cart of the current buyer
type Cart struct {
	Items          []CartLine      `json:"items"`
	Total          decimal.Decimal `json:"total" swaggertype:"string"`
	MinOrderTotal  decimal.Decimal `json:"min_order_total" swaggertype:"string"`
	MaxLines       int             `json:"max_lines"`
	DefaultAddress string          `json:"default_address,omitempty"`
}

// CheckoutRequest submits the cart
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

// StatusBadge is how an order status is displayed
type StatusBadge struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// OrderAction is a transition a seller may trigger
type OrderAction struct {
	Action string `json:"action"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

// OrderView is an order with its presentation
type OrderView struct {
	contract.Order
	Badge   StatusBadge   `json:"badge"`
	Actions []OrderAction `json:"actions,omitempty"`
}

// TransitionRequest moves an order to a new status
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
}

// AddProductRequest lists a product of the logged in seller
type AddProductRequest struct {
	CategoryID  int64           `json:"category_id" validate:"required,gt=0"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"129.90"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url,omitempty" validate:"omitempty,url"`
}

func SessionStateToJSON(s session.State) SessionState {
	res := SessionState{
		SessionID: s.ID,
		View:      string(s.View),
		CanBuy:    s.Capabilities.CanBuy,
		CanSell:   s.Capabilities.CanSell,
		CartLines: len(s.Cart.Lines),
	}
	if s.Account != nil {
		account := contract.AccountEntityToJSON(*s.Account)
		res.Account = &account
	}
	return res
}

func CatalogProductToJSON(p entities.Product, canBuy bool) CatalogProduct {
	return CatalogProduct{
		Product: contract.ProductEntityToJSON(p),
		CanAdd:  canBuy && p.Stock > 0,
	}
}

func CartToJSON(snap cart.Snapshot, minTotal decimal.Decimal, address string) Cart {
	items := make([]CartLine, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		items = append(items, CartLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}

	return Cart{
		Items:          items,
		Total:          snap.Total,
		MinOrderTotal:  minTotal,
		MaxLines:       cart.MaxLines,
		DefaultAddress: address,
	}
}

// OrderViewToJSON renders an order. Actions are listed only when actor may manage
// the whole order; a nil actor gets none.
func OrderViewToJSON(o entities.Order, actor *entities.Account) OrderView {
	badge := workflow.Badge(o.Status)
	res := OrderView{
		Order: contract.OrderEntityToJSON(o),
		Badge: StatusBadge{Label: badge.Label, Severity: string(badge.Severity)},
	}
	if actor != nil && workflow.Authorize(actor, o) == nil {
		for _, step := range workflow.Available(o.Status) {
			res.Actions = append(res.Actions, OrderAction{
				Action: string(step.Action),
				Label:  step.Action.Label(),
				Status: string(step.To),
			})
		}
	}
	return res
}

func AddProductJSONToEntity(p AddProductRequest) entities.NewProduct {
	return entities.NewProduct{
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

func categoriesToJSON(categories []entities.Category) []contract.Category {
	res := make([]contract.Category, 0, len(categories))
	for _, c := range categories {
		res = append(res, contract.CategoryEntityToJSON(c))
	}
	return res
}

func ordersToJSON(orders []entities.Order, actor *entities.Account) []OrderView {
	res := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderViewToJSON(o, actor))
	}
	return res
}
