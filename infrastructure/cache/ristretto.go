// Package cache implements domain/cache.Cache on top of
// github.com/dgraph-io/ristretto/v2, a bounded in-process cache used
// to back evaluators whose DoesCacheEstimates() is true (spec.md §4.3,
// §4.4), so that a long search over thousands of distinct states does
// not grow an evaluator's per-state cache unboundedly.
package cache

import (
	"context"

	"github.com/dgraph-io/ristretto/v2"

	domaincache "github.com/felixgeelhaar/planner-go/domain/cache"
)

// Ristretto adapts a ristretto.Cache to domain/cache.Cache.
type Ristretto struct {
	cache *ristretto.Cache[string, []byte]
}

// Config controls the bounded cache's sizing, the concrete knob behind
// SPEC_FULL.md §4.3's MaxCacheCost.
type Config struct {
	// NumCounters sizes ristretto's admission-policy counters; ristretto
	// recommends roughly 10x the expected number of distinct keys.
	NumCounters int64
	// MaxCost bounds total accepted cost, here one unit per cached byte.
	MaxCost int64
	// BufferItems sizes ristretto's internal ring buffers.
	BufferItems int64
}

// DefaultConfig sizes the cache for a few hundred thousand cached
// per-state evaluator results.
func DefaultConfig() Config {
	return Config{
		NumCounters: 1e6,
		MaxCost:     1 << 26, // 64 MiB of cached estimate bytes
		BufferItems: 64,
	}
}

// New creates a Ristretto-backed cache.
func New(cfg Config) (*Ristretto, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{cache: c}, nil
}

// Get implements domain/cache.Cache.
func (r *Ristretto) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := r.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// Set implements domain/cache.Cache. TTL of zero never expires.
func (r *Ristretto) Set(_ context.Context, key string, value []byte, opts domaincache.SetOptions) error {
	cost := int64(len(value))
	var ok bool
	if opts.TTL > 0 {
		ok = r.cache.SetWithTTL(key, value, cost, opts.TTL)
	} else {
		ok = r.cache.Set(key, value, cost)
	}
	if !ok {
		return domaincache.ErrCacheFull
	}
	r.cache.Wait()
	return nil
}

// Delete implements domain/cache.Cache.
func (r *Ristretto) Delete(_ context.Context, key string) error {
	r.cache.Del(key)
	return nil
}

// Exists implements domain/cache.Cache.
func (r *Ristretto) Exists(ctx context.Context, key string) (bool, error) {
	_, found, err := r.Get(ctx, key)
	return found, err
}

// Clear implements domain/cache.Cache.
func (r *Ristretto) Clear(context.Context) error {
	r.cache.Clear()
	return nil
}

// Close releases ristretto's background goroutines.
func (r *Ristretto) Close() {
	r.cache.Close()
}

// Stats implements domain/cache.StatsProvider.
func (r *Ristretto) Stats() domaincache.Stats {
	m := r.cache.Metrics
	if m == nil {
		return domaincache.Stats{}
	}
	return domaincache.Stats{
		Hits:   int64(m.Hits()),
		Misses: int64(m.Misses()),
		Size:   int64(m.KeysAdded() - m.KeysEvicted()),
	}
}

var (
	_ domaincache.Cache         = (*Ristretto)(nil)
	_ domaincache.StatsProvider = (*Ristretto)(nil)
)
