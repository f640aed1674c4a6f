package storage

import (
	"context"
	"encoding/json"

	"storefront-client/internal/apperr"
)

// Persisted keys. Every value is a JSON blob; the whole blob is replaced on
// write, so all mutations must go through Update to stay serialized.
const (
	KeySessionToken   = "sessionToken"
	KeyCustomerID     = "customerId"
	KeyCartItems      = "cartItems"
	KeyWishlistItems  = "wishlistItems"
	KeyRecentSearches = "recentSearches"
	KeyPushToken      = "pushToken"
)

// Store is the device key-value store behind cart, wishlist, session and
// recent-search persistence.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Update applies fn to the current value of key as one atomic step.
	// Concurrent Updates on the same key serialize; this is what closes the
	// lost-update window of a bare Get/Set pair. fn receives nil when the key
	// is absent; returning nil deletes the key.
	Update(ctx context.Context, key string, fn func(cur []byte) ([]byte, error)) error
}

// GetJSON reads and decodes key. Absent keys surface as KindNotFound with the
// zero value, so list callers can fall back to an empty collection.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T
	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, apperr.Wrap(apperr.KindStorage, "storage.get "+key, err)
	}
	return v, nil
}

func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "storage.set "+key, err)
	}
	return s.Set(ctx, key, raw)
}

// UpdateJSON is the typed read-modify-write primitive: decode, apply, encode,
// all under the key's lock. An absent key decodes to the zero value of T.
func UpdateJSON[T any](ctx context.Context, s Store, key string, fn func(cur T) (T, error)) error {
	return s.Update(ctx, key, func(cur []byte) ([]byte, error) {
		var v T
		if cur != nil {
			if err := json.Unmarshal(cur, &v); err != nil {
				return nil, apperr.Wrap(apperr.KindStorage, "storage.update "+key, err)
			}
		}
		next, err := fn(v)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(next)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindStorage, "storage.update "+key, err)
		}
		return raw, nil
	})
}
