package fondue

import (
	"time"

	"github.com/ParkBlake/fondue/codec"
)

// Package-level getters for the common case: one registry, a JSON
// round-trip, and a policy picked at the call site. Each forms the
// (namespace, policy) cache on first use and reuses it afterwards.
//
// For non-JSON codecs or repeated access to one cache, build a Typed
// view once with NewTyped instead.

// Get caches compute's result in namespace without eviction.
func Get[V any](r *Registry, namespace, key string, compute func() (V, error)) (V, error) {
	return NewTyped(r.Cache(namespace, PolicyNone()), codec.JSON[V]{}).Get(key, compute)
}

// GetWithTTL caches compute's result in namespace with a per-entry TTL.
func GetWithTTL[V any](r *Registry, namespace, key string, ttl time.Duration, kind TTLKind, compute func() (V, error)) (V, error) {
	return NewTyped(r.Cache(namespace, PolicyTTL(ttl, kind)), codec.JSON[V]{}).Get(key, compute)
}

// GetWithLimit caches compute's result in namespace bounded to limit
// entries, least recently used evicted first.
func GetWithLimit[V any](r *Registry, namespace, key string, limit int, compute func() (V, error)) (V, error) {
	return NewTyped(r.Cache(namespace, PolicyLRU(limit)), codec.JSON[V]{}).Get(key, compute)
}

// GetWithTTLAndLimit caches compute's result in namespace with both a
// per-entry TTL and an entry bound.
func GetWithTTLAndLimit[V any](r *Registry, namespace, key string, ttl time.Duration, kind TTLKind, limit int, compute func() (V, error)) (V, error) {
	return NewTyped(r.Cache(namespace, PolicyLRUTTL(limit, ttl, kind)), codec.JSON[V]{}).Get(key, compute)
}
