// Package fondue implements namespaced in-process caching with
// get-or-compute semantics and per-cache eviction policies. Lookups
// never return stale values: expiry is checked on every read, and
// capacity bounds are enforced inline after each write.
//
// Components:
//   - Cache[K, V]: sharded concurrent cache with hit/miss accounting.
//   - Policy: eviction behavior (none, lru, ttl, lru+ttl with fixed or
//     sliding lifetimes).
//   - Registry: memoizes string caches by (namespace, policy) and scopes
//     invalidation; Context narrows it to one namespace.
//   - Typed[V] + codec.Codec[V]: typed views over stored text.
//   - stats: per-cache snapshots and application-wide aggregation.
//
// Cache names:
//
//	<ns>::<policy>  - e.g. "users::lru(1024)", "sessions::ttl(30m0s,sliding)"
//
// Get-or-compute pattern:
//
//	users := reg.Cache("users", fondue.PolicyLRU(1024))
//	v, err := users.GetOrCompute(id, func() (string, error) {
//		return loadUser(ctx, id)
//	})
package fondue
