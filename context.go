package fondue

import "github.com/ParkBlake/fondue/stats"

// Context scopes registry operations to one namespace. It is a thin
// view: the registry stays the owner of the caches, the context just
// fixes the namespace argument so call sites read naturally.
type Context struct {
	name string
	reg  *Registry
}

// Context returns a namespace-scoped view of the registry.
func (r *Registry) Context(name string) *Context {
	return &Context{name: name, reg: r}
}

// Name returns the namespace this context is scoped to.
func (c *Context) Name() string { return c.name }

// Cache returns the namespace's cache under policy, creating it on
// first use.
func (c *Context) Cache(policy Policy) *Cache[string, string] {
	return c.reg.Cache(c.name, policy)
}

// Invalidate removes key from the namespace's caches across all
// policies, reporting whether any entry was removed.
func (c *Context) Invalidate(key string) bool {
	return c.reg.Invalidate(c.name, key)
}

// Clear empties the namespace's caches.
func (c *Context) Clear() {
	c.reg.ClearNamespace(c.name)
}

// CacheCount returns how many caches (policy variants) the namespace
// holds.
func (c *Context) CacheCount() int {
	return len(c.reg.namespaceCaches(c.name))
}

// TotalEntries sums the entry counts of the namespace's caches.
func (c *Context) TotalEntries() int {
	n := 0
	for _, cache := range c.reg.namespaceCaches(c.name) {
		n += cache.Len()
	}
	return n
}

// Stats aggregates live counters across the namespace's caches into a
// single snapshot named after the namespace.
func (c *Context) Stats() stats.Snapshot {
	snap := stats.Snapshot{Name: c.name}
	for _, cache := range c.reg.namespaceCaches(c.name) {
		snap.Hits += cache.Hits()
		snap.Misses += cache.Misses()
		snap.Entries += uint64(cache.Len())
	}
	if total := snap.Hits + snap.Misses; total > 0 {
		snap.HitRate = float64(snap.Hits) / float64(total)
	}
	return snap
}
