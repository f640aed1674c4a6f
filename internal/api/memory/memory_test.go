package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-client/internal/api"
	"storefront-client/internal/apperr"
	"storefront-client/internal/catalog"
	"storefront-client/internal/order"
)

var _ api.Client = (*Adapter)(nil)

func seeded() *Adapter {
	return New(Seed{
		Products: []catalog.RawProduct{
			{ID: 42, Name: "Mug", Price: "12.99", Featured: true,
				Categories: []catalog.RawCategoryRef{{ID: 7, Name: "Kitchen"}}},
			{ID: 43, Name: "Flask", Price: "24.00",
				Categories: []catalog.RawCategoryRef{{ID: 7, Name: "Kitchen"}}},
			{ID: 44, Name: "Poster", Price: "9.50",
				Categories: []catalog.RawCategoryRef{{ID: 8, Name: "Decor"}}},
		},
		Categories: []catalog.RawCategory{
			{ID: 7, Name: "Kitchen"},
			{ID: 8, Name: "Decor"},
		},
		PaymentMethods: []api.PaymentMethod{{ID: "cod", Title: "Cash on delivery", Enabled: true}},
	})
}

func TestAdapter_Catalog(t *testing.T) {
	ctx := context.Background()
	a := seeded()

	t.Run("Success - All products", func(t *testing.T) {
		products, err := a.GetProducts(ctx, api.ProductQuery{})
		assert.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("Success - Category filter", func(t *testing.T) {
		products, err := a.GetProducts(ctx, api.ProductQuery{Category: 7})
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("Success - Featured filter", func(t *testing.T) {
		products, err := a.GetProducts(ctx, api.ProductQuery{Featured: true})
		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, 42, products[0].ID)
	})

	t.Run("Success - Pagination", func(t *testing.T) {
		page1, err := a.GetProducts(ctx, api.ProductQuery{Page: 1, PerPage: 2})
		assert.NoError(t, err)
		assert.Len(t, page1, 2)

		page2, err := a.GetProducts(ctx, api.ProductQuery{Page: 2, PerPage: 2})
		assert.NoError(t, err)
		assert.Len(t, page2, 1)

		page3, err := a.GetProducts(ctx, api.ProductQuery{Page: 3, PerPage: 2})
		assert.NoError(t, err)
		assert.Empty(t, page3)
	})

	t.Run("Success - Search pre-transforms", func(t *testing.T) {
		found, err := a.SearchProducts(ctx, "mug", 0, 0)
		assert.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, "Mug", found[0].Title)
		assert.Equal(t, 12.99, found[0].Price)
	})

	t.Run("Error - Unknown product", func(t *testing.T) {
		_, err := a.GetProduct(ctx, 999)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("Success - Categories", func(t *testing.T) {
		categories, err := a.GetCategories(ctx, api.CategoryQuery{})
		assert.NoError(t, err)
		assert.Len(t, categories, 2)

		c, err := a.GetCategory(ctx, 8)
		assert.NoError(t, err)
		assert.Equal(t, "Decor", c.Name)
	})
}

func TestAdapter_CartScenario(t *testing.T) {
	ctx := context.Background()
	a := seeded()

	// two adds of product 42 merge into one line of quantity 3
	assert.NoError(t, a.AddToCart(ctx, 42, 1, nil))
	assert.NoError(t, a.AddToCart(ctx, 42, 2, nil))

	contents, err := a.GetCartContents(ctx)
	assert.NoError(t, err)
	assert.Len(t, contents.Items, 1)
	assert.Equal(t, 3, contents.Items[0].Quantity)
	assert.InDelta(t, 12.99*3, contents.CartTotal, 1e-9)
	assert.Equal(t, 3, contents.ItemCount)

	t.Run("Update by product id", func(t *testing.T) {
		assert.NoError(t, a.UpdateCart(ctx, "42", 1))

		contents, err := a.GetCartContents(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, contents.ItemCount)
	})

	t.Run("Remove by line key leaves others", func(t *testing.T) {
		assert.NoError(t, a.AddToCart(ctx, 43, 1, nil))

		contents, err := a.GetCartContents(ctx)
		assert.NoError(t, err)
		assert.Len(t, contents.Items, 2)

		assert.NoError(t, a.RemoveFromCart(ctx, contents.Items[0].Key))

		contents, err = a.GetCartContents(ctx)
		assert.NoError(t, err)
		assert.Len(t, contents.Items, 1)
		assert.Equal(t, 43, contents.Items[0].ProductID)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.NoError(t, a.EmptyCart(ctx))

		contents, err := a.GetCartContents(ctx)
		assert.NoError(t, err)
		assert.Empty(t, contents.Items)
		assert.Equal(t, 0, contents.ItemCount)
	})
}

func TestAdapter_Wishlist(t *testing.T) {
	ctx := context.Background()
	a := seeded()

	t.Run("Idempotent add", func(t *testing.T) {
		assert.NoError(t, a.AddToWishlist(ctx, 42, nil))
		assert.NoError(t, a.AddToWishlist(ctx, 42, nil))

		items, err := a.GetWishlist(ctx)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 42, items[0].ID)
	})

	t.Run("Remove", func(t *testing.T) {
		assert.NoError(t, a.AddToWishlist(ctx, 43, nil))
		assert.NoError(t, a.RemoveFromWishlist(ctx, 42))

		items, err := a.GetWishlist(ctx)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 43, items[0].ID)
	})
}

func TestAdapter_Orders(t *testing.T) {
	ctx := context.Background()
	a := seeded()

	t.Run("Success - Create and fetch", func(t *testing.T) {
		created, err := a.CreateOrder(ctx, order.OrderRequest{
			PaymentMethod: "cod",
			LineItems: []order.OrderRequestItem{
				{ProductID: 42, Quantity: 3},
				{ProductID: 44, Quantity: 1},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "pending", created.Status)
		assert.Equal(t, catalog.FlexString("48.47"), created.Total)

		got, err := a.GetOrderInfo(ctx, created.ID)
		assert.NoError(t, err)
		assert.Len(t, got.LineItems, 2)

		orders, err := a.GetOrders(ctx)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("Error - Empty order", func(t *testing.T) {
		_, err := a.CreateOrder(ctx, order.OrderRequest{})
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	})

	t.Run("Error - Unknown order", func(t *testing.T) {
		_, err := a.GetOrderInfo(ctx, 1)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestAdapter_Auth(t *testing.T) {
	ctx := context.Background()
	a := seeded()

	t.Run("Error - Account without session", func(t *testing.T) {
		_, err := a.GetAccountDetails(ctx)
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})

	t.Run("Success - Register then account", func(t *testing.T) {
		session, err := a.Register(ctx, api.Registration{Email: "x@example.com", Password: "pw"})
		assert.NoError(t, err)
		assert.NotEmpty(t, session.Token)

		details, err := a.GetAccountDetails(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "x@example.com", details.Email)
	})

	t.Run("Success - SignOut clears session", func(t *testing.T) {
		assert.NoError(t, a.SignOut(ctx))

		_, err := a.GetAccountDetails(ctx)
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})
}
