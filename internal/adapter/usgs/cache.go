package usgs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/dereckcolon1-cell/terremoto-app/internal/domain"
	"github.com/dereckcolon1-cell/terremoto-app/internal/observability"
)

// CachedFeed wraps a Feed with a TTL cache keyed by (severity, window).
// Entries expire purely by age; there is no manual invalidation. Concurrent
// fetches for the same key collapse into a single upstream request, so rapid
// repeated interactions never fan out to the feed.
type CachedFeed struct {
	inner   domain.Feed
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics

	mu      sync.Mutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

type cacheEntry struct {
	raws      []domain.RawEvent
	expiresAt time.Time
}

// NewCachedFeed creates a TTL cache decorator around a feed.
func NewCachedFeed(inner domain.Feed, ttl time.Duration, metrics *observability.Metrics) *CachedFeed {
	return &CachedFeed{
		inner:   inner,
		ttl:     ttl,
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		entries: make(map[string]cacheEntry),
	}
}

// Fetch returns the cached snapshot for (severity, window) when fresh,
// otherwise fetches upstream and caches the result. Errors are never cached,
// so the next interaction retries naturally.
func (c *CachedFeed) Fetch(ctx context.Context, severity domain.Severity, window domain.Window) ([]domain.RawEvent, error) {
	key := fmt.Sprintf("%s|%s", severity, window)

	if raws, ok := c.lookup(key); ok {
		c.metrics.FeedCache.WithLabelValues("hit").Inc()
		return raws, nil
	}
	c.metrics.FeedCache.WithLabelValues("miss").Inc()

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have populated the entry while this one
		// was queued behind the flight.
		if raws, ok := c.lookup(key); ok {
			return raws, nil
		}
		raws, err := c.inner.Fetch(ctx, severity, window)
		if err != nil {
			return nil, err
		}
		c.store(key, raws)
		return raws, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.RawEvent), nil
}

func (c *CachedFeed) lookup(key string) ([]domain.RawEvent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.clock.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.raws, true
}

func (c *CachedFeed) store(key string, raws []domain.RawEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		raws:      raws,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}
