package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errWrongValue = errors.New("unexpected loaded value")

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "table", nil
	}

	const workers = 32
	start := make(chan struct{})
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "standings:comp-1", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "table" {
				errCh <- errWrongValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ServesCachedValue(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "standings:comp-2", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "standings:comp-2", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestStore_Get_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "standings:comp-3", "stale")
	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(ctx, "standings:comp-3"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "standings:comp-1", 1)
	store.Set(ctx, "standings:comp-1:export", 2)
	store.Set(ctx, "rankings:comp-1", 3)

	store.DeletePrefix(ctx, "standings:comp-1")

	if _, ok := store.Get(ctx, "standings:comp-1"); ok {
		t.Fatalf("expected standings key to be removed")
	}
	if _, ok := store.Get(ctx, "standings:comp-1:export"); ok {
		t.Fatalf("expected export key to be removed")
	}
	if _, ok := store.Get(ctx, "rankings:comp-1"); !ok {
		t.Fatalf("expected rankings key to survive")
	}
}
