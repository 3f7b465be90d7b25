package schemactx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/labdex/labdex/pkg/database"
)

// mruSize bounds the ring of recently used table names that earn a ranking
// bonus across questions in a session.
const mruSize = 8

// Cache holds the current schema manifest with TTL expiry and NOTIFY-driven
// invalidation. All methods are safe for concurrent use.
type Cache struct {
	querier database.Querier
	schemas []string
	ttl     time.Duration

	mu       sync.Mutex
	manifest *Manifest
	mru      []string
}

// NewCache creates a cache over the given querier. The TTL is short in
// development and long in production; see config.SchemaCacheTTL.
func NewCache(q database.Querier, schemas []string, ttl time.Duration) *Cache {
	return &Cache{querier: q, schemas: schemas, ttl: ttl}
}

// Manifest returns the cached manifest, refetching when absent or expired.
// When a refetch produces a different snapshot id the MRU ring is cleared.
func (c *Cache) Manifest(ctx context.Context) (*Manifest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.manifest != nil && time.Since(c.manifest.FetchedAt) < c.ttl {
		return c.manifest, nil
	}

	m, err := Introspect(ctx, c.querier, c.schemas)
	if err != nil {
		if c.manifest != nil {
			slog.Warn("Schema refetch failed, serving stale manifest", "error", err)
			return c.manifest, nil
		}
		return nil, fmt.Errorf("fetch schema manifest: %w", err)
	}

	if c.manifest != nil && c.manifest.SnapshotID != m.SnapshotID {
		slog.Info("Schema snapshot changed",
			"old", c.manifest.SnapshotID[:12], "new", m.SnapshotID[:12])
		c.mru = nil
	}
	c.manifest = m
	return c.manifest, nil
}

// Invalidate drops the cached manifest. The next Manifest call refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.manifest = nil
	slog.Debug("Schema manifest invalidated")
}

// TouchTables records tables that a generated query actually used, feeding
// the MRU bonus for subsequent questions.
func (c *Cache) TouchTables(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range names {
		c.mru = appendMRU(c.mru, n)
	}
}

func (c *Cache) mruSnapshot() map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]bool, len(c.mru))
	for _, n := range c.mru {
		out[n] = true
	}
	return out
}

func appendMRU(ring []string, name string) []string {
	for i, n := range ring {
		if n == name {
			// Move to front.
			copy(ring[1:i+1], ring[:i])
			ring[0] = name
			return ring
		}
	}
	ring = append([]string{name}, ring...)
	if len(ring) > mruSize {
		ring = ring[:mruSize]
	}
	return ring
}
