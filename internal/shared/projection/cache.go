// Package projection holds read-side snapshots that are reloaded from the
// database after a write invalidates them.
package projection

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

type entry[T any] struct {
	value   T
	expires time.Time
	gen     uint64
}

// Cache maps a view key to its last loaded value. A zero TTL keeps entries
// until Invalidate is called.
type Cache[T any] struct {
	ttl     time.Duration
	now     func() time.Time
	entries *xsync.MapOf[string, entry[T]]

	// gen is bumped on every Invalidate. Entries remember the generation
	// their load started under and only count as hits while it is current.
	gen atomic.Uint64
}

func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: xsync.NewMapOf[string, entry[T]](),
	}
}

// Get returns the cached value for key or calls load. The bool reports a cache hit.
func (c *Cache[T]) Get(ctx context.Context, key string, load func(context.Context) (T, error)) (T, bool, error) {
	gen := c.gen.Load()
	if e, ok := c.entries.Load(key); ok {
		if e.gen == gen && (e.expires.IsZero() || c.now().Before(e.expires)) {
			return e.value, true, nil
		}
		c.entries.Delete(key)
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	if c.gen.Load() == gen {
		e := entry[T]{value: v, gen: gen}
		if c.ttl > 0 {
			e.expires = c.now().Add(c.ttl)
		}
		c.entries.Store(key, e)
		// an Invalidate that landed between the check and the store
		if c.gen.Load() != gen {
			c.entries.Delete(key)
		}
	}
	return v, false, nil
}

// Invalidate drops every entry so the next Get reloads.
func (c *Cache[T]) Invalidate() {
	c.gen.Add(1)
	c.entries.Clear()
}

func (c *Cache[T]) Len() int { return c.entries.Size() }
