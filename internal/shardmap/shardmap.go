// Package shardmap provides a hash-sharded concurrent map.
//
// Keys are spread across a power-of-two number of shards, each guarded
// by its own RWMutex, so readers and writers touching different shards
// never contend. There is no table-wide lock: Len and Range observe the
// shards one at a time and may interleave with concurrent writers.
package shardmap

import (
	"hash/maphash"
	"runtime"
	"sync"
)

const minShards = 8

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// Map is a concurrent map partitioned into independently locked shards.
// The zero value is not usable; construct with New.
type Map[K comparable, V any] struct {
	seed   maphash.Seed
	shards []*shard[K, V]
	mask   uint64
}

// New returns a map with the given shard count, rounded up to a power
// of two. A count <= 0 selects a default sized from GOMAXPROCS.
func New[K comparable, V any](shardCount int) *Map[K, V] {
	if shardCount <= 0 {
		shardCount = runtime.GOMAXPROCS(0) * 4
	}
	n := nextPow2(shardCount)
	if n < minShards {
		n = minShards
	}
	m := &Map[K, V]{
		seed:   maphash.MakeSeed(),
		shards: make([]*shard[K, V], n),
		mask:   uint64(n - 1),
	}
	for i := range m.shards {
		m.shards[i] = &shard[K, V]{m: make(map[K]V)}
	}
	return m
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (m *Map[K, V]) shardFor(key K) *shard[K, V] {
	h := maphash.Comparable(m.seed, key)
	return m.shards[h&m.mask]
}

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	s := m.shardFor(key)
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	return v, ok
}

// Store sets the value for key, replacing any previous value.
func (m *Map[K, V]) Store(key K, value V) {
	s := m.shardFor(key)
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	s := m.shardFor(key)
	s.mu.Lock()
	_, ok := s.m[key]
	if ok {
		delete(s.m, key)
	}
	s.mu.Unlock()
	return ok
}

// Len returns the total number of entries. Shards are counted one at a
// time, so under concurrent writes the result is a point-in-time
// approximation rather than an exact figure.
func (m *Map[K, V]) Len() int {
	n := 0
	for _, s := range m.shards {
		s.mu.RLock()
		n += len(s.m)
		s.mu.RUnlock()
	}
	return n
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	for _, s := range m.shards {
		s.mu.Lock()
		s.m = make(map[K]V)
		s.mu.Unlock()
	}
}

// Range calls f for each entry until f returns false. Each shard is
// read-locked while it is visited, so f must not call methods of m that
// write, or it may self-deadlock. Entries added or removed concurrently
// in shards not yet visited may or may not be seen.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	for _, s := range m.shards {
		s.mu.RLock()
		for k, v := range s.m {
			if !f(k, v) {
				s.mu.RUnlock()
				return
			}
		}
		s.mu.RUnlock()
	}
}
