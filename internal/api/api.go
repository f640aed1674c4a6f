package api

import (
	"context"

	"storefront-client/internal/cart"
	"storefront-client/internal/catalog"
	"storefront-client/internal/order"
)

// Client is the adapter contract every backend implementation satisfies.
// The screens only ever see this interface; swapping the WordPress adapter
// for the in-memory fixture is a construction-time decision.
//
// Catalog reads return raw backend shapes for the caller to transform, with
// one exception: SearchProducts pre-transforms its results.
type Client interface {
	// auth / account
	Login(ctx context.Context, creds Credentials) (Session, error)
	Register(ctx context.Context, reg Registration) (Session, error)
	SignOut(ctx context.Context) error
	SetSessionToken(ctx context.Context, token string) error
	GetAccountDetails(ctx context.Context) (AccountDetails, error)
	UpdateAccountDetails(ctx context.Context, details AccountDetails) (AccountDetails, error)
	GetAddressBook(ctx context.Context) ([]Address, error)

	// catalog
	GetProducts(ctx context.Context, query ProductQuery) ([]catalog.RawProduct, error)
	GetProduct(ctx context.Context, id int) (catalog.RawProduct, error)
	SearchProducts(ctx context.Context, q string, page, limit int) ([]catalog.Product, error)
	GetCategories(ctx context.Context, query CategoryQuery) ([]catalog.RawCategory, error)
	GetCategory(ctx context.Context, id int) (catalog.RawCategory, error)
	GetCarouselItems(ctx context.Context) ([]catalog.Product, error)

	// cart (device-local on every backend)
	GetCartContents(ctx context.Context) (cart.Contents, error)
	AddToCart(ctx context.Context, productID, quantity int, product *catalog.Product) error
	UpdateCart(ctx context.Context, key string, quantity int) error
	RemoveFromCart(ctx context.Context, key string) error
	EmptyCart(ctx context.Context) error

	// wishlist (device-local on every backend)
	GetWishlist(ctx context.Context) ([]catalog.Product, error)
	AddToWishlist(ctx context.Context, id int, product *catalog.Product) error
	RemoveFromWishlist(ctx context.Context, id int) error

	// checkout / orders
	GetPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
	GetShippingMethods(ctx context.Context) ([]ShippingMethod, error)
	CreateOrder(ctx context.Context, req order.OrderRequest) (order.RawOrder, error)
	GetOrders(ctx context.Context) ([]order.RawOrder, error)
	GetOrderInfo(ctx context.Context, id int) (order.RawOrder, error)

	// device
	UpdatePushToken(ctx context.Context, token string) error
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Session struct {
	Token       string `json:"token"`
	CustomerID  string `json:"customer_id"`
	DisplayName string `json:"user_display_name"`
	Email       string `json:"user_email"`
}

type AccountDetails struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

type ShippingMethod struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Cost  float64 `json:"cost"`
}

type ProductQuery struct {
	Page     int
	PerPage  int
	Category int
	Search   string
	Featured bool
	OrderBy  string
	Order    string
}

type CategoryQuery struct {
	Page      int
	PerPage   int
	Parent    int
	HideEmpty bool
}
