package order

import "storefront-client/internal/catalog"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
	StatusFailed     Status = "failed"
)

type Order struct {
	OrderID   int            `json:"order_id"`
	DateAdded string         `json:"date_added"`
	Status    Status         `json:"status"`
	Total     float64        `json:"total"`
	Products  []OrderProduct `json:"products"`
}

type OrderProduct struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Raw shapes as the orders endpoint returns them.
type RawOrder struct {
	ID          int                `json:"id"`
	DateCreated string             `json:"date_created"`
	Status      string             `json:"status"`
	Total       catalog.FlexString `json:"total"`
	LineItems   []RawLineItem      `json:"line_items"`
}

type RawLineItem struct {
	ProductID int                `json:"product_id"`
	Name      string             `json:"name"`
	Quantity  int                `json:"quantity"`
	Price     catalog.FlexString `json:"price"`
}

// OrderRequest is the payload for creating an order from the cart.
type OrderRequest struct {
	PaymentMethod string             `json:"payment_method"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Billing       map[string]string  `json:"billing,omitempty"`
	Shipping      map[string]string  `json:"shipping,omitempty"`
	LineItems     []OrderRequestItem `json:"line_items"`
}

type OrderRequestItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
