package usgs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dereckcolon1-cell/terremoto-app/internal/domain"
	"github.com/dereckcolon1-cell/terremoto-app/internal/observability"
)

// countingFeed counts upstream fetches; optionally fails or blocks.
type countingFeed struct {
	calls   atomic.Int64
	err     error
	release chan struct{}
	result  []domain.RawEvent
}

func (f *countingFeed) Fetch(_ context.Context, _ domain.Severity, _ domain.Window) ([]domain.RawEvent, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestCache(inner domain.Feed, ttl time.Duration, clock clockwork.Clock) *CachedFeed {
	c := NewCachedFeed(inner, ttl, observability.NewMetricsForTesting())
	c.clock = clock
	return c
}

func TestCachedFeed_HitWithinTTL(t *testing.T) {
	inner := &countingFeed{result: []domain.RawEvent{{Place: "Guanica"}}}
	cache := newTestCache(inner, 2*time.Minute, clockwork.NewFakeClock())

	r1, err := cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowMonth)
	require.NoError(t, err)
	r2, err := cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowMonth)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, int64(1), inner.calls.Load(), "second fetch should be served from cache")
}

func TestCachedFeed_ExpiresAfterTTL(t *testing.T) {
	fake := clockwork.NewFakeClock()
	inner := &countingFeed{result: []domain.RawEvent{{Place: "Guanica"}}}
	cache := newTestCache(inner, 2*time.Minute, fake)

	_, err := cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowMonth)
	require.NoError(t, err)

	fake.Advance(2*time.Minute + time.Second)

	_, err = cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowMonth)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inner.calls.Load(), "expired entry should refetch")
}

func TestCachedFeed_KeysAreIndependent(t *testing.T) {
	inner := &countingFeed{}
	cache := newTestCache(inner, 2*time.Minute, clockwork.NewFakeClock())

	_, err := cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowMonth)
	require.NoError(t, err)
	_, err = cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowWeek)
	require.NoError(t, err)
	_, err = cache.Fetch(context.Background(), domain.Severity25, domain.WindowMonth)
	require.NoError(t, err)

	assert.Equal(t, int64(3), inner.calls.Load())
}

func TestCachedFeed_ErrorsNotCached(t *testing.T) {
	inner := &countingFeed{err: errors.New("feed down")}
	cache := newTestCache(inner, 2*time.Minute, clockwork.NewFakeClock())

	_, err := cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowMonth)
	require.Error(t, err)

	inner.err = nil
	_, err = cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowMonth)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inner.calls.Load(), "failure should not poison the cache")
}

func TestCachedFeed_ConcurrentFetchesCollapse(t *testing.T) {
	inner := &countingFeed{
		release: make(chan struct{}),
		result:  []domain.RawEvent{{Place: "Guanica"}},
	}
	cache := newTestCache(inner, 2*time.Minute, clockwork.NewFakeClock())

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]domain.RawEvent, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.Fetch(context.Background(), domain.SeverityAll, domain.WindowMonth)
		}(i)
	}

	// Let the goroutines pile onto the in-flight request, then release it.
	time.Sleep(50 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, int64(1), inner.calls.Load(), "concurrent callers must share one upstream request")
}
