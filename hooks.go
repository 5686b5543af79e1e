package fondue

// Hooks lightweight callbacks for entries the cache removes on its own.
// Implementations MUST be cheap and non-blocking.
// The cache calls them synchronously on hot paths; wrap with
// hooks/async to decouple slow consumers.
//
// Caller-initiated removals (Invalidate, Clear) do not fire hooks.
type Hooks interface {
	// An entry past its TTL was removed, either by a lookup that found
	// it stale or by the expiry sweep.
	EntryExpired(cache string, key, value any)

	// The capacity sweep removed a least recently used entry.
	EntryEvicted(cache string, key, value any)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EntryExpired(string, any, any) {}
func (NopHooks) EntryEvicted(string, any, any) {}
