package evaluator

import (
	"context"
	"encoding/binary"

	domaincache "github.com/felixgeelhaar/planner-go/domain/cache"
	"github.com/felixgeelhaar/planner-go/domain/evaluation"
)

// Cached wraps an inner evaluator with a domain/cache.Cache, keyed by
// the state's StateID, so repeated lookups of the same state (common
// once reopening or a shared successor is involved) hit the bounded
// backing store (infrastructure/cache's ristretto.Ristretto in
// production) instead of recomputing. Only meaningful over an
// evaluator whose value is a pure function of state — Context carries
// a candidate G and LastOp, but those are dropped from the lookup key
// deliberately, so Cached should not wrap a PathDependent or
// G-sensitive evaluator.
type Cached struct {
	Inner evaluation.Evaluator
	Cache domaincache.Cache
}

// cacheKey encodes a StateID as the 8 raw bytes big-endian ristretto
// stores would otherwise re-hash from a string; keeps the key short
// and collision-free across a single cache instance.
func cacheKey(id uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	return string(buf[:])
}

// Evaluate implements evaluation.Evaluator. A cache hit decodes the
// stored (value, infinite) pair and reports CountEvaluation: false, per
// spec.md §4.4's distinction between a fresh evaluation and a
// cache-satisfied lookup.
func (c Cached) Evaluate(ctx evaluation.Context) evaluation.Result {
	key := cacheKey(uint64(ctx.StateID))
	if raw, ok, err := c.Cache.Get(context.Background(), key); err == nil && ok && len(raw) == 9 {
		value := int(binary.BigEndian.Uint64(raw[1:]))
		return evaluation.Result{Value: value, Infinite: raw[0] == 1, CountEvaluation: false}
	}

	res := c.Inner.Evaluate(ctx)
	buf := make([]byte, 9)
	if res.Infinite {
		buf[0] = 1
	}
	binary.BigEndian.PutUint64(buf[1:], uint64(res.Value))
	_ = c.Cache.Set(context.Background(), key, buf, domaincache.SetOptions{})
	return evaluation.Result{Value: res.Value, Infinite: res.Infinite, CountEvaluation: true}
}

// DeadEndsAreReliable implements evaluation.Evaluator.
func (c Cached) DeadEndsAreReliable() bool { return c.Inner.DeadEndsAreReliable() }

// DoesCacheEstimates implements evaluation.Evaluator. Always true: that
// is the entire point of this wrapper.
func (c Cached) DoesCacheEstimates() bool { return true }
