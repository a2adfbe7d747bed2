package query

import (
	"context"
	"fmt"
)

// Policy controls how a collection balances freshness against request volume
type Policy struct {
	// AlwaysRefetch drops the cached value on every access, for collections
	// expected to change behind the client's back. Concurrent readers still
	// coalesce onto one request.
	AlwaysRefetch bool
}

// Collection is a typed read accessor bound to a fixed resource key. Every
// reader of one logical collection must go through the same Collection so
// cache sharing and invalidation line up; the key is the contract.
type Collection[T any] struct {
	key    string
	store  *Store
	policy Policy
	fetch  func(context.Context) ([]T, error)
}

// NewCollection binds a resource key to its fetch function
func NewCollection[T any](store *Store, key string, policy Policy, fetch func(context.Context) ([]T, error)) *Collection[T] {
	return &Collection[T]{
		key:    key,
		store:  store,
		policy: policy,
		fetch:  fetch,
	}
}

// Key returns the resource key this collection caches under
func (c *Collection[T]) Key() string {
	return c.key
}

// Get returns the cached collection, fetching it if needed. The result is
// never nil, so callers can range without a nil check even on error.
func (c *Collection[T]) Get(ctx context.Context) ([]T, error) {
	if c.policy.AlwaysRefetch {
		c.store.Invalidate(c.key)
	}

	v, err := c.store.Do(ctx, c.key, func(ctx context.Context) (interface{}, error) {
		items, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	})
	if err != nil {
		return []T{}, err
	}

	items, ok := v.([]T)
	if !ok {
		return []T{}, fmt.Errorf("cache entry %q holds an unexpected type", c.key)
	}
	return items, nil
}

// Refetch drops the cached value and fetches anew
func (c *Collection[T]) Refetch(ctx context.Context) ([]T, error) {
	c.store.Invalidate(c.key)
	return c.Get(ctx)
}

// ByID derives an index of the collection keyed by the given field, skipping
// entries whose key is empty. The index is derived, never authoritative; the
// list remains the source of truth.
func (c *Collection[T]) ByID(ctx context.Context, keyOf func(T) string) (map[string]T, error) {
	items, err := c.Get(ctx)
	if err != nil {
		return map[string]T{}, err
	}

	index := make(map[string]T, len(items))
	for _, item := range items {
		if k := keyOf(item); k != "" {
			index[k] = item
		}
	}
	return index, nil
}
