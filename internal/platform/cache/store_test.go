package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	if _, ok := store.Get(ctx, "stats"); ok {
		t.Fatal("expected miss for empty store")
	}

	store.Set(ctx, "stats", 42)
	got, ok := store.Get(ctx, "stats")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got != 42 {
		t.Fatalf("Get = %v, want 42", got)
	}

	store.Delete(ctx, "stats")
	if _, ok := store.Get(ctx, "stats"); ok {
		t.Fatal("expected miss after Delete")
	}
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	current := time.Now()
	store.now = func() time.Time { return current }

	store.Set(ctx, "stats", "cached")
	if _, ok := store.Get(ctx, "stats"); !ok {
		t.Fatal("expected hit before expiry")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "stats"); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
}

func TestStoreDeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	store.Set(ctx, "players:list:0:25", 1)
	store.Set(ctx, "players:list:25:25", 2)
	store.Set(ctx, "statistics", 3)

	store.DeletePrefix(ctx, "players:")

	if _, ok := store.Get(ctx, "players:list:0:25"); ok {
		t.Fatal("expected prefixed key to be deleted")
	}
	if _, ok := store.Get(ctx, "players:list:25:25"); ok {
		t.Fatal("expected prefixed key to be deleted")
	}
	if _, ok := store.Get(ctx, "statistics"); !ok {
		t.Fatal("expected unrelated key to survive")
	}
}

func TestStoreGetOrLoadCachesValue(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		got, err := store.GetOrLoad(ctx, "stats", loader)
		if err != nil {
			t.Fatalf("GetOrLoad returned error: %v", err)
		}
		if got != "loaded" {
			t.Fatalf("GetOrLoad = %v, want loaded", got)
		}
	}

	if calls != 1 {
		t.Fatalf("loader called %d times, want 1", calls)
	}
}

func TestStoreGetOrLoadDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	wantErr := errors.New("load failed")
	calls := 0
	if _, err := store.GetOrLoad(ctx, "stats", func(context.Context) (any, error) {
		calls++
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("GetOrLoad error = %v, want %v", err, wantErr)
	}

	if _, err := store.GetOrLoad(ctx, "stats", func(context.Context) (any, error) {
		calls++
		return "ok", nil
	}); err != nil {
		t.Fatalf("GetOrLoad returned error: %v", err)
	}

	if calls != 2 {
		t.Fatalf("loader called %d times, want 2", calls)
	}
}

func TestStoreGetOrLoadCollapsesConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := store.GetOrLoad(ctx, "stats", loader)
			if err != nil {
				t.Errorf("GetOrLoad returned error: %v", err)
				return
			}
			results[i] = got
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	for i, got := range results {
		if got != "shared" {
			t.Fatalf("worker %d got %v, want shared", i, got)
		}
	}
}
