package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func countingFetch(calls *int32, value interface{}) func(context.Context) (interface{}, error) {
	return func(context.Context) (interface{}, error) {
		atomic.AddInt32(calls, 1)
		return value, nil
	}
}

func TestDoCachesResult(t *testing.T) {
	store := NewStore()
	var calls int32
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := store.Do(ctx, "categories/allCategories", countingFetch(&calls, "cached"))
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		if got != "cached" {
			t.Errorf("got %v, want cached", got)
		}
	}
	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}
	if _, ok := store.Cached("categories/allCategories"); !ok {
		t.Error("key should report as cached")
	}
}

func TestDoCoalescesConcurrentReads(t *testing.T) {
	store := NewStore()
	var calls int32
	entered := make(chan struct{})
	release := make(chan struct{})
	ctx := context.Background()

	fetch := func(context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		close(entered)
		<-release
		return 42, nil
	}

	leaderDone := make(chan struct{})
	var leaderGot interface{}
	go func() {
		defer close(leaderDone)
		leaderGot, _ = store.Do(ctx, "products", fetch)
	}()
	<-entered

	// The flight is registered before fetch runs, so this caller must join
	// it instead of starting a second fetch.
	waiterDone := make(chan struct{})
	var waiterGot interface{}
	go func() {
		defer close(waiterDone)
		waiterGot, _ = store.Do(ctx, "products", countingFetch(&calls, "duplicate"))
	}()

	close(release)
	<-leaderDone
	<-waiterDone

	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}
	if leaderGot != 42 || waiterGot != 42 {
		t.Errorf("leader=%v waiter=%v, want 42 for both", leaderGot, waiterGot)
	}
}

func TestDoSharesFetchError(t *testing.T) {
	store := NewStore()
	var calls int32
	wantErr := errors.New("backend down")
	entered := make(chan struct{})
	release := make(chan struct{})
	ctx := context.Background()

	leaderDone := make(chan struct{})
	var leaderErr error
	go func() {
		defer close(leaderDone)
		_, leaderErr = store.Do(ctx, "orders", func(context.Context) (interface{}, error) {
			atomic.AddInt32(&calls, 1)
			close(entered)
			<-release
			return nil, wantErr
		})
	}()
	<-entered

	waiterDone := make(chan struct{})
	var waiterErr error
	go func() {
		defer close(waiterDone)
		_, waiterErr = store.Do(ctx, "orders", countingFetch(&calls, nil))
	}()

	// Give the waiter time to join the flight before it completes; a failed
	// fetch is not cached, so a waiter arriving late would fetch on its own.
	time.Sleep(50 * time.Millisecond)
	close(release)
	<-leaderDone
	<-waiterDone

	if calls != 1 {
		t.Errorf("fetch ran %d times during flight, want 1", calls)
	}
	if !errors.Is(leaderErr, wantErr) || !errors.Is(waiterErr, wantErr) {
		t.Errorf("leader=%v waiter=%v, want shared %v", leaderErr, waiterErr, wantErr)
	}

	// Errors are not cached: the next read starts a fresh fetch.
	if _, err := store.Do(ctx, "orders", countingFetch(&calls, "recovered")); err != nil {
		t.Fatalf("Do after failure: %v", err)
	}
	if calls != 2 {
		t.Errorf("fetch ran %d times total, want 2", calls)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	store := NewStore()
	var calls int32
	ctx := context.Background()

	store.Do(ctx, "contacts", countingFetch(&calls, "v1"))
	store.Invalidate("contacts")

	if _, ok := store.Cached("contacts"); ok {
		t.Error("invalidated key still reports as cached")
	}

	got, err := store.Do(ctx, "contacts", countingFetch(&calls, "v2"))
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got != "v2" {
		t.Errorf("got %v, want v2", got)
	}
	if calls != 2 {
		t.Errorf("fetch ran %d times, want 2", calls)
	}
}

func TestInvalidateIsIdempotent(t *testing.T) {
	store := NewStore()
	var calls int32
	ctx := context.Background()

	store.Do(ctx, "users", countingFetch(&calls, "v1"))
	store.Invalidate("users")
	store.Invalidate("users")
	store.Invalidate("users")

	store.Do(ctx, "users", countingFetch(&calls, "v2"))
	if calls != 2 {
		t.Errorf("fetch ran %d times, want 2", calls)
	}
}

func TestInvalidateAbsentKeyIsNoop(t *testing.T) {
	store := NewStore()
	store.Invalidate("never-fetched")
	if _, ok := store.Cached("never-fetched"); ok {
		t.Error("absent key must not appear cached after invalidation")
	}
}

func TestLateResultDoesNotRepopulateInvalidatedKey(t *testing.T) {
	store := NewStore()
	entered := make(chan struct{})
	release := make(chan struct{})
	ctx := context.Background()

	done := make(chan struct{})
	var got interface{}
	go func() {
		defer close(done)
		got, _ = store.Do(ctx, "products", func(context.Context) (interface{}, error) {
			close(entered)
			<-release
			return "stale", nil
		})
	}()
	<-entered

	// A write lands while the read is in flight.
	store.Invalidate("products")
	close(release)
	<-done

	// The in-flight caller still gets its value.
	if got != "stale" {
		t.Errorf("caller got %v, want stale", got)
	}
	// But the late result must not be cached under the new generation.
	if _, ok := store.Cached("products"); ok {
		t.Error("late result resurrected an invalidated key")
	}

	var calls int32
	fresh, err := store.Do(ctx, "products", countingFetch(&calls, "fresh"))
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if fresh != "fresh" || calls != 1 {
		t.Errorf("expected a fresh fetch, got %v after %d calls", fresh, calls)
	}
}

func TestDoHonorsContextWhileWaiting(t *testing.T) {
	store := NewStore()
	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	go store.Do(context.Background(), "slow", func(context.Context) (interface{}, error) {
		close(entered)
		<-release
		return nil, nil
	})
	<-entered

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Do(ctx, "slow", func(context.Context) (interface{}, error) {
		return nil, nil
	}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestDoIsSafeForManyKeys(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	ctx := context.Background()
	keys := []string{"a", "b", "c", "d"}

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := keys[i%len(keys)]
			store.Do(ctx, key, func(context.Context) (interface{}, error) {
				return key, nil
			})
			if i%3 == 0 {
				store.Invalidate(key)
			}
		}(i)
	}
	wg.Wait()
}
