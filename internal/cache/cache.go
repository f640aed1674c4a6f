// Package cache is the read-through TTL layer between list fetches and the
// adapter. Screens seed their first paint from Peek and go through Get for
// the rest; an entry older than maxAge triggers a refetch.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultSize = 128

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// Loader caches fetch results by key. The backing store is LRU-bounded, so
// parameterized keys (every filter combination gets its own entry) cannot
// grow without limit.
type Loader[T any] struct {
	entries *lru.Cache[string, entry[T]]
	maxAge  time.Duration

	mu  sync.Mutex
	now func() time.Time
}

func NewLoader[T any](maxAge time.Duration) *Loader[T] {
	// size is fixed; lru.New only errors on size <= 0
	entries, _ := lru.New[string, entry[T]](defaultSize)
	return &Loader[T]{
		entries: entries,
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Key builds the cache key from a fixed prefix and the JSON encoding of the
// params value. Struct params always encode the same way, so identical
// queries share an entry.
func Key(prefix string, params any) string {
	if params == nil {
		return prefix
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return prefix
	}
	return prefix + string(raw)
}

// Peek returns whatever is cached under key, fresh or stale, for synchronous
// first paint. The bool reports presence, not freshness.
func (l *Loader[T]) Peek(key string) (T, bool) {
	e, ok := l.entries.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Get returns the cached value while it is fresh and refetches otherwise.
// An entry of age exactly maxAge counts as stale. Fetches for a loader
// serialize, so a burst of misses performs one network call each, in order.
func (l *Loader[T]) Get(ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries.Get(key); ok {
		if l.now().Sub(e.fetchedAt) < l.maxAge {
			return e.value, nil
		}
	}
	return l.fetch(ctx, key, fetch)
}

// Refresh always refetches, replacing whatever is cached under key.
func (l *Loader[T]) Refresh(ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetch(ctx, key, fetch)
}

func (l *Loader[T]) fetch(ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	l.entries.Add(key, entry[T]{value: value, fetchedAt: l.now()})
	return value, nil
}

// Invalidate drops the entry under key.
func (l *Loader[T]) Invalidate(key string) {
	l.entries.Remove(key)
}
