package fondue

import (
	"sort"
	"strings"
	"sync"

	"github.com/ParkBlake/fondue/stats"
)

// nameSeparator joins a namespace and a policy key into a cache name,
// e.g. "users::lru(100)". Policy keys never contain the separator, so
// the namespace can always be recovered from a name.
const nameSeparator = "::"

func cacheName(namespace string, policy Policy) string {
	return namespace + nameSeparator + policy.String()
}

func namespaceOf(name string) string {
	if i := strings.LastIndex(name, nameSeparator); i >= 0 {
		return name[:i]
	}
	return name
}

// Registry hands out string-keyed caches memoized by (namespace,
// policy). Asking twice for the same pair returns the same handle, so
// every call site naming "users" under one policy shares entries and
// counters; the same namespace under a different policy is a distinct
// cache.
//
// A Registry is explicit application state: build one where the rest of
// the dependencies are wired and pass it to whatever needs a cache.
// All methods are safe for concurrent use.
type Registry struct {
	log    Logger
	hooks  Hooks
	stats  *stats.Collector
	shards int

	mu     sync.RWMutex
	caches map[string]*Cache[string, string]
}

// RegistryOptions tune a Registry. The zero value is usable.
type RegistryOptions struct {
	// Logger; if nil, logging is disabled.
	Logger Logger

	// Hooks are installed on every cache the registry creates.
	// nil => NopHooks.
	Hooks Hooks

	// Stats collects snapshots from every cache the registry creates.
	// nil => a fresh Collector, reachable via Stats().
	Stats *stats.Collector

	// Shards per cache. <= 0 => a default derived from GOMAXPROCS.
	Shards int
}

// NewRegistry constructs an empty registry.
func NewRegistry(opts RegistryOptions) *Registry {
	return &Registry{
		log:    coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:  coalesce[Hooks](opts.Hooks, NopHooks{}),
		stats:  coalesce(opts.Stats, stats.NewCollector()),
		shards: opts.Shards,
		caches: make(map[string]*Cache[string, string]),
	}
}

// Cache returns the cache for namespace under policy, creating it on
// first use. The returned handle is shared: all callers of the same
// (namespace, policy) pair operate on the same storage.
func (r *Registry) Cache(namespace string, policy Policy) *Cache[string, string] {
	name := cacheName(namespace, policy)

	r.mu.RLock()
	c, ok := r.caches[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.caches[name]; ok {
		return c
	}
	c = New[string, string](Options{
		Name:   name,
		Policy: policy,
		Stats:  r.stats,
		Logger: r.log,
		Hooks:  r.hooks,
		Shards: r.shards,
	})
	r.caches[name] = c
	r.log.Debug("created cache", Fields{"namespace": namespace, "policy": policy.String()})
	return c
}

// namespaceCaches snapshots the caches belonging to namespace. The
// match is exact: "users" never matches "users2", and a namespace that
// itself contains the separator is still only matched whole.
func (r *Registry) namespaceCaches(namespace string) []*Cache[string, string] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Cache[string, string]
	for name, c := range r.caches {
		if namespaceOf(name) == namespace {
			out = append(out, c)
		}
	}
	return out
}

// allCaches snapshots every cache in the registry.
func (r *Registry) allCaches() []*Cache[string, string] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Cache[string, string], 0, len(r.caches))
	for _, c := range r.caches {
		out = append(out, c)
	}
	return out
}

// Invalidate removes key from every cache in namespace, across all
// policies, and reports whether any entry was removed.
func (r *Registry) Invalidate(namespace, key string) bool {
	removed := false
	for _, c := range r.namespaceCaches(namespace) {
		if c.Invalidate(key) {
			removed = true
		}
	}
	return removed
}

// ClearNamespace empties every cache in namespace. The caches stay
// registered and keep their counters.
func (r *Registry) ClearNamespace(namespace string) {
	for _, c := range r.namespaceCaches(namespace) {
		c.Clear()
	}
}

// ClearAll empties every cache in the registry.
func (r *Registry) ClearAll() {
	for _, c := range r.allCaches() {
		c.Clear()
	}
}

// Len returns the number of caches the registry has created.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.caches)
}

// Namespaces returns the distinct namespaces with at least one cache,
// sorted.
func (r *Registry) Namespaces() []string {
	r.mu.RLock()
	seen := make(map[string]struct{}, len(r.caches))
	for name := range r.caches {
		seen[namespaceOf(name)] = struct{}{}
	}
	r.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Stats returns the collector receiving snapshots from the registry's
// caches.
func (r *Registry) Stats() *stats.Collector {
	return r.stats
}
