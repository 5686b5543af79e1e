package fondue

import (
	"sync/atomic"
	"time"
)

// entry is a stored value plus the metadata eviction needs. Timestamps
// are nanoseconds on the owning cache's monotonic clock. createdAt is
// fixed at construction; lastAccess and accessCount advance on reads.
type entry[V any] struct {
	value       V
	ttl         time.Duration
	ttlKind     TTLKind
	hasTTL      bool
	createdAt   int64
	lastAccess  atomic.Int64
	accessCount atomic.Uint64
}

func newEntry[V any](value V, now int64, ttl time.Duration, kind TTLKind, hasTTL bool) *entry[V] {
	e := &entry[V]{
		value:     value,
		ttl:       ttl,
		ttlKind:   kind,
		hasTTL:    hasTTL,
		createdAt: now,
	}
	e.lastAccess.Store(now)
	return e
}

// touch records a read at time now. lastAccess only moves forward:
// racing readers may interleave, but an older timestamp never replaces
// a newer one, so recency stays monotonic.
func (e *entry[V]) touch(now int64) {
	e.accessCount.Add(1)
	for {
		prev := e.lastAccess.Load()
		if now <= prev || e.lastAccess.CompareAndSwap(prev, now) {
			return
		}
	}
}

// expired reports whether the entry's lifetime has elapsed at time now.
// Entries without a TTL never expire. Fixed TTLs measure from creation,
// sliding TTLs from the most recent access. A zero TTL expires on the
// next observation.
func (e *entry[V]) expired(now int64) bool {
	if !e.hasTTL {
		return false
	}
	var since int64
	switch e.ttlKind {
	case TTLSliding:
		since = now - e.lastAccess.Load()
	default:
		since = now - e.createdAt
	}
	return since >= int64(e.ttl)
}
