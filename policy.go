package fondue

import (
	"fmt"
	"time"
)

// TTLKind selects how an entry's time-to-live is measured.
type TTLKind uint8

const (
	// TTLFixed measures lifetime from when the entry was created.
	// Reads do not extend it.
	TTLFixed TTLKind = iota
	// TTLSliding measures lifetime from the entry's most recent access,
	// so regular reads keep it alive indefinitely.
	TTLSliding
)

func (k TTLKind) String() string {
	if k == TTLSliding {
		return "sliding"
	}
	return "fixed"
}

type policyKind uint8

const (
	policyNone policyKind = iota
	policyLRU
	policyTTL
	policyLRUTTL
)

// Policy describes a cache's eviction behavior. It is an immutable
// value; build one with PolicyNone, PolicyLRU, PolicyTTL or
// PolicyLRUTTL. The zero value behaves like PolicyNone.
//
// A capacity bounds the number of entries, with the least recently
// accessed evicted first. A TTL bounds each entry's lifetime. The
// combined form applies both: expiry is swept before capacity, so dead
// entries never crowd out live ones.
type Policy struct {
	kind     policyKind
	capacity int
	ttl      time.Duration
	ttlKind  TTLKind
}

// PolicyNone grows without bound and never expires entries.
func PolicyNone() Policy {
	return Policy{kind: policyNone}
}

// PolicyLRU bounds the cache to capacity entries. Negative capacities
// are treated as zero, which keeps the cache permanently empty.
func PolicyLRU(capacity int) Policy {
	if capacity < 0 {
		capacity = 0
	}
	return Policy{kind: policyLRU, capacity: capacity}
}

// PolicyTTL expires entries after d, measured per kind. Negative
// durations are treated as zero, which expires entries immediately.
func PolicyTTL(d time.Duration, kind TTLKind) Policy {
	if d < 0 {
		d = 0
	}
	return Policy{kind: policyTTL, ttl: d, ttlKind: kind}
}

// PolicyLRUTTL combines a capacity bound with a per-entry TTL.
func PolicyLRUTTL(capacity int, d time.Duration, kind TTLKind) Policy {
	if capacity < 0 {
		capacity = 0
	}
	if d < 0 {
		d = 0
	}
	return Policy{kind: policyLRUTTL, capacity: capacity, ttl: d, ttlKind: kind}
}

// Capacity returns the entry bound and whether the policy has one.
func (p Policy) Capacity() (int, bool) {
	switch p.kind {
	case policyLRU, policyLRUTTL:
		return p.capacity, true
	}
	return 0, false
}

// TTL returns the entry lifetime, its kind, and whether the policy has
// one. Policies without a TTL report (0, TTLFixed, false); entries they
// stamp never expire.
func (p Policy) TTL() (time.Duration, TTLKind, bool) {
	switch p.kind {
	case policyTTL, policyLRUTTL:
		return p.ttl, p.ttlKind, true
	}
	return 0, TTLFixed, false
}

// String renders the policy in its canonical registry-key form:
// "none", "lru(100)", "ttl(200ms,fixed)" or "lru_ttl(100,1m0s,sliding)".
// Equal policies render identically, so the string doubles as an
// identity key.
func (p Policy) String() string {
	switch p.kind {
	case policyLRU:
		return fmt.Sprintf("lru(%d)", p.capacity)
	case policyTTL:
		return fmt.Sprintf("ttl(%v,%v)", p.ttl, p.ttlKind)
	case policyLRUTTL:
		return fmt.Sprintf("lru_ttl(%d,%v,%v)", p.capacity, p.ttl, p.ttlKind)
	default:
		return "none"
	}
}
