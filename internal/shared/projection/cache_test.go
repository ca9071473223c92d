package projection

import (
	"context"
	"errors"
	"testing"
	"time"
)

func counter(n *int, v string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		*n++
		return v, nil
	}
}

func TestCache_HitAfterLoad(t *testing.T) {
	c := New[string](time.Minute)
	loads := 0

	v, hit, err := c.Get(context.Background(), "k", counter(&loads, "a"))
	if err != nil || hit || v != "a" {
		t.Fatalf("first get: v=%q hit=%v err=%v", v, hit, err)
	}
	v, hit, err = c.Get(context.Background(), "k", counter(&loads, "b"))
	if err != nil || !hit || v != "a" {
		t.Fatalf("second get: v=%q hit=%v err=%v", v, hit, err)
	}
	if loads != 1 {
		t.Fatalf("expected 1 load, got %d", loads)
	}
}

func TestCache_InvalidateForcesReload(t *testing.T) {
	c := New[string](0)
	loads := 0

	_, _, _ = c.Get(context.Background(), "k", counter(&loads, "a"))
	c.Invalidate()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after invalidate, got %d", c.Len())
	}

	v, hit, err := c.Get(context.Background(), "k", counter(&loads, "b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("expected miss after invalidate")
	}
	if v != "b" || loads != 2 {
		t.Fatalf("expected reload to b, got %q after %d loads", v, loads)
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New[string](time.Second)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	loads := 0

	_, _, _ = c.Get(context.Background(), "k", counter(&loads, "a"))
	now = now.Add(2 * time.Second)

	_, hit, _ := c.Get(context.Background(), "k", counter(&loads, "b"))
	if hit {
		t.Fatal("expected expired entry to miss")
	}
	if loads != 2 {
		t.Fatalf("expected 2 loads, got %d", loads)
	}
}

func TestCache_LoadErrorNotStored(t *testing.T) {
	c := New[string](time.Minute)
	boom := errors.New("db down")

	_, _, err := c.Get(context.Background(), "k", func(context.Context) (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected nothing cached, got %d", c.Len())
	}
}

func TestCache_InvalidateDuringLoadSkipsStore(t *testing.T) {
	c := New[string](time.Minute)

	v, _, err := c.Get(context.Background(), "k", func(context.Context) (string, error) {
		c.Invalidate()
		return "stale", nil
	})
	if err != nil || v != "stale" {
		t.Fatalf("expected stale value returned to caller, got %q err=%v", v, err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected stale load not to be cached, got %d entries", c.Len())
	}
}

func TestCache_EntryFromOlderGenerationMisses(t *testing.T) {
	c := New[string](0)
	// a load that finished after Invalidate bumped the generation
	c.entries.Store("k", entry[string]{value: "stale", gen: c.gen.Load()})
	c.gen.Add(1)

	loads := 0
	v, hit, err := c.Get(context.Background(), "k", counter(&loads, "fresh"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit || v != "fresh" || loads != 1 {
		t.Fatalf("expected reload past stale entry, got v=%q hit=%v loads=%d", v, hit, loads)
	}

	v, hit, _ = c.Get(context.Background(), "k", counter(&loads, "other"))
	if !hit || v != "fresh" {
		t.Fatalf("expected fresh value cached, got v=%q hit=%v", v, hit)
	}
}
