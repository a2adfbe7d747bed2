package query

import (
	"context"
	"sync"
	"time"
)

// Store is a process-wide cache of read results keyed by resource key. It is
// the only shared mutable state in the client layer: entries change solely
// through fetch completion and invalidation, never directly by callers.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// flight is one in-progress fetch shared by every caller that arrives while
// it is outstanding
type flight struct {
	done chan struct{}
	data interface{}
	err  error
}

type entry struct {
	data      interface{}
	valid     bool
	fetchedAt time.Time
	// gen is bumped by Invalidate. A fetch started under an older generation
	// still hands its result to its callers but does not repopulate the
	// cache, so a late-arriving result cannot resurrect an invalidated key.
	gen    uint64
	flight *flight
}

// NewStore creates an empty cache store
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*entry),
	}
}

// Do returns the cached value for key, or runs fetch and caches the result.
// Concurrent callers for the same key while a fetch is in flight share that
// single fetch — its value and its error both — rather than issuing
// duplicate requests. A failed fetch is not retried; the error surfaces to
// every waiting caller and the next Do starts fresh.
func (s *Store) Do(ctx context.Context, key string, fetch func(context.Context) (interface{}, error)) (interface{}, error) {
	s.mu.Lock()
	e := s.entries[key]
	if e == nil {
		e = &entry{}
		s.entries[key] = e
	}

	if e.valid {
		data := e.data
		s.mu.Unlock()
		return data, nil
	}

	if f := e.flight; f != nil {
		s.mu.Unlock()
		select {
		case <-f.done:
			return f.data, f.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f := &flight{done: make(chan struct{})}
	e.flight = f
	gen := e.gen
	s.mu.Unlock()

	data, err := fetch(ctx)

	s.mu.Lock()
	f.data = data
	f.err = err
	close(f.done)
	e.flight = nil
	if err == nil && e.gen == gen {
		e.data = data
		e.valid = true
		e.fetchedAt = time.Now()
	}
	s.mu.Unlock()

	return data, err
}

// Invalidate marks the given keys stale so the next read refetches them.
// Invalidating an absent or already-stale key is a no-op, so racing
// invalidations are harmless.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		if e := s.entries[key]; e != nil {
			e.valid = false
			e.gen++
		}
	}
}

// Cached reports whether key currently holds a valid value and when it was
// fetched
func (s *Store) Cached(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]
	if e == nil || !e.valid {
		return time.Time{}, false
	}
	return e.fetchedAt, true
}
