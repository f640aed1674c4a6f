// Package memory is the in-memory fixture implementation of the adapter
// contract. Each Adapter owns its state and is constructed per test or per
// app run; there is no shared package-level data.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-client/internal/api"
	"storefront-client/internal/apperr"
	"storefront-client/internal/cart"
	"storefront-client/internal/catalog"
	"storefront-client/internal/order"
)

// Seed is the injected fixture data.
type Seed struct {
	Products        []catalog.RawProduct
	Categories      []catalog.RawCategory
	PaymentMethods  []api.PaymentMethod
	ShippingMethods []api.ShippingMethod
}

type Adapter struct {
	mu sync.Mutex

	seed       Seed
	registered map[string]api.Registration

	session   api.Session
	cartItems []cart.Item
	wishlist  []catalog.Product
	orders    []order.RawOrder
	pushToken string

	nextOrderID int
}

func New(seed Seed) *Adapter {
	return &Adapter{
		seed:        seed,
		registered:  make(map[string]api.Registration),
		nextOrderID: 1000,
	}
}

// ----------------- auth / account -----------------

func (a *Adapter) Login(ctx context.Context, creds api.Credentials) (api.Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return api.Session{}, apperr.New(apperr.KindUnauthorized, "memory.login", "invalid credentials")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.session = api.Session{
		Token:       "memory-" + uuid.NewString(),
		CustomerID:  "1",
		DisplayName: creds.Username,
		Email:       creds.Username,
	}
	return a.session, nil
}

func (a *Adapter) Register(ctx context.Context, reg api.Registration) (api.Session, error) {
	if reg.Email == "" || reg.Password == "" {
		return api.Session{}, apperr.New(apperr.KindValidation, "memory.register", "email and password are required")
	}

	a.mu.Lock()
	a.registered[reg.Email] = reg
	a.mu.Unlock()

	return a.Login(ctx, api.Credentials{Username: reg.Email, Password: reg.Password})
}

func (a *Adapter) SignOut(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = api.Session{}
	return nil
}

func (a *Adapter) SetSessionToken(ctx context.Context, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session.Token = token
	return nil
}

func (a *Adapter) GetAccountDetails(ctx context.Context) (api.AccountDetails, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session.Token == "" {
		return api.AccountDetails{}, apperr.New(apperr.KindUnauthorized, "memory.account", "not signed in")
	}
	return api.AccountDetails{ID: 1, Email: a.session.Email, Username: a.session.DisplayName}, nil
}

func (a *Adapter) UpdateAccountDetails(ctx context.Context, details api.AccountDetails) (api.AccountDetails, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session.Token == "" {
		return api.AccountDetails{}, apperr.New(apperr.KindUnauthorized, "memory.account", "not signed in")
	}
	a.session.Email = details.Email
	return details, nil
}

func (a *Adapter) GetAddressBook(ctx context.Context) ([]api.Address, error) {
	return []api.Address{}, nil
}

// ----------------- catalog -----------------

func (a *Adapter) GetProducts(ctx context.Context, query api.ProductQuery) ([]catalog.RawProduct, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	matched := make([]catalog.RawProduct, 0, len(a.seed.Products))
	for _, p := range a.seed.Products {
		if query.Featured && !p.Featured {
			continue
		}
		if query.Category > 0 && !hasCategory(p, query.Category) {
			continue
		}
		if query.Search != "" && !strings.Contains(strings.ToLower(p.DisplayName()), strings.ToLower(query.Search)) {
			continue
		}
		matched = append(matched, p)
	}

	return paginate(matched, query.Page, query.PerPage), nil
}

func (a *Adapter) GetProduct(ctx context.Context, id int) (catalog.RawProduct, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, p := range a.seed.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.RawProduct{}, apperr.New(apperr.KindNotFound, "memory.product", fmt.Sprintf("product %d not found", id))
}

func (a *Adapter) SearchProducts(ctx context.Context, q string, page, limit int) ([]catalog.Product, error) {
	raws, err := a.GetProducts(ctx, api.ProductQuery{Search: q, Page: page, PerPage: limit})
	if err != nil {
		return nil, err
	}
	return catalog.TransformProducts(raws), nil
}

func (a *Adapter) GetCategories(ctx context.Context, query api.CategoryQuery) ([]catalog.RawCategory, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return paginate(a.seed.Categories, query.Page, query.PerPage), nil
}

func (a *Adapter) GetCategory(ctx context.Context, id int) (catalog.RawCategory, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, c := range a.seed.Categories {
		if c.ID == id {
			return c, nil
		}
	}
	return catalog.RawCategory{}, apperr.New(apperr.KindNotFound, "memory.category", fmt.Sprintf("category %d not found", id))
}

func (a *Adapter) GetCarouselItems(ctx context.Context) ([]catalog.Product, error) {
	raws, err := a.GetProducts(ctx, api.ProductQuery{Featured: true})
	if err != nil {
		return nil, err
	}
	return catalog.TransformProducts(raws), nil
}

// ----------------- cart -----------------

func (a *Adapter) GetCartContents(ctx context.Context) (cart.Contents, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cart.Snapshot(append([]cart.Item(nil), a.cartItems...)), nil
}

func (a *Adapter) AddToCart(ctx context.Context, productID, quantity int, product *catalog.Product) error {
	if quantity < 1 {
		return cart.ErrInvalidQuantity
	}

	if product == nil {
		raw, err := a.GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		p := catalog.TransformProduct(raw)
		product = &p
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.cartItems = cart.Merge(a.cartItems, cart.Item{
		Key:       uuid.NewString(),
		ProductID: productID,
		ID:        productID,
		Title:     product.Title,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  quantity,
	})
	return nil
}

func (a *Adapter) UpdateCart(ctx context.Context, key string, quantity int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartItems = cart.SetQuantity(a.cartItems, key, quantity)
	return nil
}

func (a *Adapter) RemoveFromCart(ctx context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartItems = cart.RemoveMatching(a.cartItems, key)
	return nil
}

func (a *Adapter) EmptyCart(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartItems = nil
	return nil
}

// ----------------- wishlist -----------------

func (a *Adapter) GetWishlist(ctx context.Context) ([]catalog.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]catalog.Product{}, a.wishlist...), nil
}

func (a *Adapter) AddToWishlist(ctx context.Context, id int, product *catalog.Product) error {
	if product == nil {
		raw, err := a.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		p := catalog.TransformProduct(raw)
		product = &p
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, it := range a.wishlist {
		if it.ID == id {
			return nil
		}
	}
	a.wishlist = append(a.wishlist, *product)
	return nil
}

func (a *Adapter) RemoveFromWishlist(ctx context.Context, id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept := make([]catalog.Product, 0, len(a.wishlist))
	for _, it := range a.wishlist {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	a.wishlist = kept
	return nil
}

// ----------------- checkout / orders -----------------

func (a *Adapter) GetPaymentMethods(ctx context.Context) ([]api.PaymentMethod, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]api.PaymentMethod{}, a.seed.PaymentMethods...), nil
}

func (a *Adapter) GetShippingMethods(ctx context.Context) ([]api.ShippingMethod, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]api.ShippingMethod{}, a.seed.ShippingMethods...), nil
}

func (a *Adapter) CreateOrder(ctx context.Context, req order.OrderRequest) (order.RawOrder, error) {
	if len(req.LineItems) == 0 {
		return order.RawOrder{}, apperr.New(apperr.KindValidation, "memory.order", "order has no line items")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var total float64
	lines := make([]order.RawLineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		price, name := a.priceOf(li.ProductID)
		total += price * float64(li.Quantity)
		lines = append(lines, order.RawLineItem{
			ProductID: li.ProductID,
			Name:      name,
			Quantity:  li.Quantity,
			Price:     catalog.FlexString(fmt.Sprintf("%.2f", price)),
		})
	}

	a.nextOrderID++
	created := order.RawOrder{
		ID:          a.nextOrderID,
		DateCreated: time.Now().UTC().Format(time.RFC3339),
		Status:      "pending",
		Total:       catalog.FlexString(fmt.Sprintf("%.2f", total)),
		LineItems:   lines,
	}
	a.orders = append(a.orders, created)
	return created, nil
}

func (a *Adapter) priceOf(productID int) (float64, string) {
	for _, p := range a.seed.Products {
		if p.ID == productID {
			return catalog.ParsePrice(string(p.Price)), p.DisplayName()
		}
	}
	return 0, ""
}

func (a *Adapter) GetOrders(ctx context.Context) ([]order.RawOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]order.RawOrder{}, a.orders...), nil
}

func (a *Adapter) GetOrderInfo(ctx context.Context, id int) (order.RawOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, o := range a.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return order.RawOrder{}, apperr.New(apperr.KindNotFound, "memory.order", fmt.Sprintf("order %d not found", id))
}

// ----------------- device -----------------

func (a *Adapter) UpdatePushToken(ctx context.Context, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pushToken = token
	return nil
}

func hasCategory(p catalog.RawProduct, id int) bool {
	for _, c := range p.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		return append([]T{}, items...)
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[start:end]...)
}
