package wordpress

import (
	"context"

	"go.uber.org/zap"

	"storefront-client/internal/apperr"
	"storefront-client/internal/catalog"
	"storefront-client/internal/logger"
	"storefront-client/internal/storage"
)

// Wishlist entries are full product entities keyed by id, kept device-local
// like the cart.

func (c *Client) GetWishlist(ctx context.Context) ([]catalog.Product, error) {
	items, err := storage.GetJSON[[]catalog.Product](ctx, c.store, storage.KeyWishlistItems)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		logger.FromCtx(ctx).Warn("wishlist read failed, treating as empty", zap.Error(err))
	}
	if items == nil {
		items = []catalog.Product{}
	}
	return items, nil
}

// AddToWishlist is idempotent: an id already present stays a single entry.
func (c *Client) AddToWishlist(ctx context.Context, id int, product *catalog.Product) error {
	if product == nil {
		raw, err := c.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		p := catalog.TransformProduct(raw)
		product = &p
	}

	return storage.UpdateJSON(ctx, c.store, storage.KeyWishlistItems, func(items []catalog.Product) ([]catalog.Product, error) {
		for _, it := range items {
			if it.ID == id {
				return items, nil
			}
		}
		return append(items, *product), nil
	})
}

func (c *Client) RemoveFromWishlist(ctx context.Context, id int) error {
	return storage.UpdateJSON(ctx, c.store, storage.KeyWishlistItems, func(items []catalog.Product) ([]catalog.Product, error) {
		kept := make([]catalog.Product, 0, len(items))
		for _, it := range items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		return kept, nil
	})
}
