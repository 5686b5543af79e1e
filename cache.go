package fondue

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/ParkBlake/fondue/internal/shardmap"
	"github.com/ParkBlake/fondue/stats"
)

// Cache is an in-process get-or-compute cache. Storage is sharded so
// unrelated keys never contend on one lock; hit and miss counters are
// plain atomics. A *Cache is a cheap shared handle: pass it around
// freely, every holder sees the same entries and counters.
//
// The cache does no background work. Expiry and capacity enforcement
// run inline after each write, and lookups re-check expiry on the entry
// they find, so a stale value is never returned even if no sweep has
// run since it went stale.
type Cache[K comparable, V any] struct {
	name    string
	policy  Policy
	log     Logger
	hooks   Hooks
	sink    stats.Sink
	epoch   time.Time
	storage *shardmap.Map[K, *entry[V]]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// now returns nanoseconds since the cache's construction on the
// monotonic clock, immune to wall-clock adjustments.
func (c *Cache[K, V]) now() int64 {
	return int64(time.Since(c.epoch))
}

// Name returns the cache's identity as used in snapshots and hooks.
func (c *Cache[K, V]) Name() string { return c.name }

// Policy returns the eviction policy the cache was built with.
func (c *Cache[K, V]) Policy() Policy { return c.policy }

// GetOrCompute returns the cached value for key, computing and storing
// it on a miss. A present, unexpired entry counts as a hit and has its
// recency touched. An expired entry is removed first and the call
// proceeds as a miss.
//
// compute runs at most once per call and its result is stored only on
// success: an error (or panic) propagates to the caller unmodified and
// caches nothing. Concurrent callers missing on the same key may each
// run compute independently; the last store wins.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	defer c.publish()

	if e, ok := c.storage.Get(key); ok {
		now := c.now()
		if !e.expired(now) {
			e.touch(now)
			c.hits.Add(1)
			return e.value, nil
		}
		if c.storage.Delete(key) {
			c.hooks.EntryExpired(c.name, key, e.value)
		}
	}

	c.misses.Add(1)
	value, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	ttl, kind, hasTTL := c.policy.TTL()
	c.storage.Store(key, newEntry(value, c.now(), ttl, kind, hasTTL))
	c.maintain()
	return value, nil
}

// TryGet returns the cached value for key if it is present and not
// expired. It never computes: absence and expiry yield (zero, false)
// without counting a miss. A successful lookup counts a hit and
// touches recency, same as GetOrCompute.
func (c *Cache[K, V]) TryGet(key K) (V, bool) {
	defer c.publish()

	var zero V
	e, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	now := c.now()
	if e.expired(now) {
		if c.storage.Delete(key) {
			c.hooks.EntryExpired(c.name, key, e.value)
		}
		return zero, false
	}
	e.touch(now)
	c.hits.Add(1)
	return e.value, true
}

// Insert stores value under key unconditionally, replacing any prior
// entry along with its access history: the new entry starts with a
// fresh creation time and zero reads. Hit/miss counters are untouched.
func (c *Cache[K, V]) Insert(key K, value V) {
	defer c.publish()

	ttl, kind, hasTTL := c.policy.TTL()
	c.storage.Store(key, newEntry(value, c.now(), ttl, kind, hasTTL))
	c.maintain()
}

// Invalidate removes key and reports whether an entry was present.
// Removing an absent key is a harmless no-op.
func (c *Cache[K, V]) Invalidate(key K) bool {
	defer c.publish()
	return c.storage.Delete(key)
}

// Clear removes every entry. Counters keep their values; only the
// stored entries are dropped.
func (c *Cache[K, V]) Clear() {
	defer c.publish()
	c.storage.Clear()
}

// Len returns the number of stored entries, including any that have
// expired but not yet been swept. Approximate under concurrent writes.
func (c *Cache[K, V]) Len() int { return c.storage.Len() }

// Hits returns the number of lookups served from a live entry.
func (c *Cache[K, V]) Hits() uint64 { return c.hits.Load() }

// Misses returns the number of GetOrCompute calls that had to compute.
func (c *Cache[K, V]) Misses() uint64 { return c.misses.Load() }

// HitRate returns hits / (hits + misses), or exactly 0 when the cache
// has seen no lookups at all.
func (c *Cache[K, V]) HitRate() float64 {
	hits := c.hits.Load()
	total := hits + c.misses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// Snapshot assembles the cache's current statistics. Counters are read
// independently, so the result is eventually consistent under load.
func (c *Cache[K, V]) Snapshot() stats.Snapshot {
	return stats.Snapshot{
		Name:    c.name,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: uint64(c.storage.Len()),
		HitRate: c.HitRate(),
	}
}

func (c *Cache[K, V]) publish() {
	c.sink.Register(c.name, c.Snapshot())
}

// victim is an eviction candidate captured during a sweep snapshot.
type victim[K comparable, V any] struct {
	key     K
	value   V
	last    int64
	created int64
}

// maintain enforces the policy after a write. Expiry runs before the
// capacity check so dead entries never crowd out live ones. Both
// sweeps operate on a point-in-time view of the shards: entries
// written or removed mid-sweep may be missed this round and are picked
// up by the next write. For a single-threaded caller the result is
// exact.
func (c *Cache[K, V]) maintain() {
	c.sweepExpired()
	c.sweepCapacity()
}

func (c *Cache[K, V]) sweepExpired() {
	if _, _, ok := c.policy.TTL(); !ok {
		return
	}
	now := c.now()
	var dead []victim[K, V]
	c.storage.Range(func(k K, e *entry[V]) bool {
		if e.expired(now) {
			dead = append(dead, victim[K, V]{key: k, value: e.value})
		}
		return true
	})
	if len(dead) == 0 {
		return
	}
	swept := 0
	for _, d := range dead {
		if c.storage.Delete(d.key) {
			c.hooks.EntryExpired(c.name, d.key, d.value)
			swept++
		}
	}
	if swept > 0 {
		c.log.Debug("swept expired entries", Fields{"cache": c.name, "count": swept})
	}
}

func (c *Cache[K, V]) sweepCapacity() {
	capacity, ok := c.policy.Capacity()
	if !ok || c.storage.Len() <= capacity {
		return
	}
	candidates := make([]victim[K, V], 0, c.storage.Len())
	c.storage.Range(func(k K, e *entry[V]) bool {
		candidates = append(candidates, victim[K, V]{
			key:     k,
			value:   e.value,
			last:    e.lastAccess.Load(),
			created: e.createdAt,
		})
		return true
	})
	excess := len(candidates) - capacity
	if excess <= 0 {
		return
	}
	// Least recently accessed first; creation order breaks ties.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].last != candidates[j].last {
			return candidates[i].last < candidates[j].last
		}
		return candidates[i].created < candidates[j].created
	})
	evicted := 0
	for _, v := range candidates[:excess] {
		if c.storage.Delete(v.key) {
			c.hooks.EntryEvicted(c.name, v.key, v.value)
			evicted++
		}
	}
	if evicted > 0 {
		c.log.Debug("evicted lru entries", Fields{
			"cache":    c.name,
			"count":    evicted,
			"capacity": capacity,
		})
	}
}
