package search

import (
	"context"
	"strings"

	"storefront-client/internal/apperr"
	"storefront-client/internal/storage"
)

// maxRecent is how many searches the device remembers.
const maxRecent = 5

// Recent keeps the user's latest search terms, most recent first.
type Recent struct {
	store storage.Store
}

func NewRecent(store storage.Store) *Recent {
	return &Recent{store: store}
}

// Record remembers q: deduplicated case-insensitively, newest first, capped.
func (r *Recent) Record(ctx context.Context, q string) error {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}

	return storage.UpdateJSON(ctx, r.store, storage.KeyRecentSearches, func(cur []string) ([]string, error) {
		next := make([]string, 0, maxRecent)
		next = append(next, q)
		for _, prev := range cur {
			if strings.EqualFold(prev, q) {
				continue
			}
			next = append(next, prev)
			if len(next) == maxRecent {
				break
			}
		}
		return next, nil
	})
}

func (r *Recent) List(ctx context.Context) ([]string, error) {
	terms, err := storage.GetJSON[[]string](ctx, r.store, storage.KeyRecentSearches)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return terms, nil
}

func (r *Recent) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyRecentSearches)
}
