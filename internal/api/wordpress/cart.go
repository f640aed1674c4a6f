package wordpress

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-client/internal/apperr"
	"storefront-client/internal/cart"
	"storefront-client/internal/catalog"
	"storefront-client/internal/logger"
	"storefront-client/internal/storage"
)

// The cart is device-local state: nothing here talks to the backend, signed
// in or not. Every mutation is a serialized read-modify-write on the cart
// key, so rapid taps from different screens cannot clobber each other.

// GetCartContents reads the local cart. The store is best-effort for reads:
// a missing or unreadable blob comes back as an empty cart, not an error.
func (c *Client) GetCartContents(ctx context.Context) (cart.Contents, error) {
	items, err := storage.GetJSON[[]cart.Item](ctx, c.store, storage.KeyCartItems)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		logger.FromCtx(ctx).Warn("cart read failed, treating as empty", zap.Error(err))
	}
	return cart.Snapshot(items), nil
}

func (c *Client) AddToCart(ctx context.Context, productID, quantity int, product *catalog.Product) error {
	if quantity < 1 {
		return cart.ErrInvalidQuantity
	}

	line, err := c.cartLine(ctx, productID, quantity, product)
	if err != nil {
		return err
	}

	return storage.UpdateJSON(ctx, c.store, storage.KeyCartItems, func(items []cart.Item) ([]cart.Item, error) {
		return cart.Merge(items, line), nil
	})
}

// cartLine builds the line to merge, fetching the product when the caller
// did not pass it along.
func (c *Client) cartLine(ctx context.Context, productID, quantity int, product *catalog.Product) (cart.Item, error) {
	if product == nil {
		raw, err := c.GetProduct(ctx, productID)
		if err != nil {
			return cart.Item{}, err
		}
		p := catalog.TransformProduct(raw)
		product = &p
	}

	return cart.Item{
		Key:       uuid.NewString(),
		ProductID: productID,
		ID:        productID,
		Title:     product.Title,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  quantity,
	}, nil
}

func (c *Client) UpdateCart(ctx context.Context, key string, quantity int) error {
	return storage.UpdateJSON(ctx, c.store, storage.KeyCartItems, func(items []cart.Item) ([]cart.Item, error) {
		return cart.SetQuantity(items, key, quantity), nil
	})
}

func (c *Client) RemoveFromCart(ctx context.Context, key string) error {
	return storage.UpdateJSON(ctx, c.store, storage.KeyCartItems, func(items []cart.Item) ([]cart.Item, error) {
		return cart.RemoveMatching(items, key), nil
	})
}

func (c *Client) EmptyCart(ctx context.Context) error {
	return c.store.Delete(ctx, storage.KeyCartItems)
}
