package fondue

import (
	"fmt"
	"time"

	"github.com/ParkBlake/fondue/internal/shardmap"
	"github.com/ParkBlake/fondue/stats"
)

// Options tune a cache built with New. Every field is optional: the
// zero value yields an unnamed, unbounded cache that never expires
// entries, logs nowhere and publishes nowhere.
type Options struct {
	// Name identifies the cache in snapshots, hooks and logs.
	// Empty => a name derived from the cache's address.
	Name string

	// Policy selects eviction behavior. Zero value => PolicyNone().
	Policy Policy

	// Stats receives a fresh snapshot after every cache operation.
	// nil => stats.NopSink.
	Stats stats.Sink

	// Logger; if nil, logging is disabled.
	Logger Logger

	// Hooks receive expiry/eviction notifications. nil => NopHooks.
	Hooks Hooks

	// Shards overrides the shard count of the backing map.
	// <= 0 => a default derived from GOMAXPROCS.
	Shards int
}

// New constructs a cache. Unlike most constructors it cannot fail:
// every option has a usable default.
func New[K comparable, V any](opts Options) *Cache[K, V] {
	c := &Cache[K, V]{
		policy:  opts.Policy,
		epoch:   time.Now(),
		storage: shardmap.New[K, *entry[V]](opts.Shards),
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.sink = coalesce[stats.Sink](opts.Stats, stats.NopSink{})

	c.name = opts.Name
	if c.name == "" {
		c.name = fmt.Sprintf("cache@%p", c)
	}
	return c
}
