package fondue

import (
	"testing"
	"time"
)

func TestPolicyNone(t *testing.T) {
	p := PolicyNone()
	if _, ok := p.Capacity(); ok {
		t.Fatalf("PolicyNone reports a capacity")
	}
	if _, _, ok := p.TTL(); ok {
		t.Fatalf("PolicyNone reports a ttl")
	}
	if p.String() != "none" {
		t.Fatalf("String = %q", p.String())
	}
	if (Policy{}) != p {
		t.Fatalf("zero Policy differs from PolicyNone()")
	}
}

func TestPolicyLRU(t *testing.T) {
	p := PolicyLRU(100)
	capacity, ok := p.Capacity()
	if !ok || capacity != 100 {
		t.Fatalf("Capacity = %d, %v", capacity, ok)
	}
	if _, _, ok := p.TTL(); ok {
		t.Fatalf("PolicyLRU reports a ttl")
	}
	if p.String() != "lru(100)" {
		t.Fatalf("String = %q", p.String())
	}

	if capacity, _ := PolicyLRU(-5).Capacity(); capacity != 0 {
		t.Fatalf("negative capacity clamped to %d; want 0", capacity)
	}
}

func TestPolicyTTL(t *testing.T) {
	p := PolicyTTL(200*time.Millisecond, TTLFixed)
	d, kind, ok := p.TTL()
	if !ok || d != 200*time.Millisecond || kind != TTLFixed {
		t.Fatalf("TTL = %v, %v, %v", d, kind, ok)
	}
	if _, ok := p.Capacity(); ok {
		t.Fatalf("PolicyTTL reports a capacity")
	}
	if p.String() != "ttl(200ms,fixed)" {
		t.Fatalf("String = %q", p.String())
	}

	sliding := PolicyTTL(time.Minute, TTLSliding)
	if sliding.String() != "ttl(1m0s,sliding)" {
		t.Fatalf("String = %q", sliding.String())
	}

	if d, _, _ := PolicyTTL(-time.Second, TTLFixed).TTL(); d != 0 {
		t.Fatalf("negative ttl clamped to %v; want 0", d)
	}
}

func TestPolicyLRUTTL(t *testing.T) {
	p := PolicyLRUTTL(8, 90*time.Second, TTLSliding)
	capacity, ok := p.Capacity()
	if !ok || capacity != 8 {
		t.Fatalf("Capacity = %d, %v", capacity, ok)
	}
	d, kind, ok := p.TTL()
	if !ok || d != 90*time.Second || kind != TTLSliding {
		t.Fatalf("TTL = %v, %v, %v", d, kind, ok)
	}
	if p.String() != "lru_ttl(8,1m30s,sliding)" {
		t.Fatalf("String = %q", p.String())
	}
}

// TestPolicyIdentity: equal constructions compare equal and render the
// same key, so they address the same registry slot.
func TestPolicyIdentity(t *testing.T) {
	a := PolicyLRUTTL(8, time.Minute, TTLFixed)
	b := PolicyLRUTTL(8, time.Minute, TTLFixed)
	if a != b {
		t.Fatalf("equal policies compare unequal")
	}
	if a.String() != b.String() {
		t.Fatalf("equal policies render different keys")
	}

	seen := map[Policy]int{a: 1}
	if seen[b] != 1 {
		t.Fatalf("Policy unusable as a map key")
	}

	if PolicyLRU(8) == PolicyLRUTTL(8, time.Minute, TTLFixed) {
		t.Fatalf("different policy kinds compare equal")
	}
}

func TestTTLKindString(t *testing.T) {
	if TTLFixed.String() != "fixed" || TTLSliding.String() != "sliding" {
		t.Fatalf("TTLKind strings: %q, %q", TTLFixed, TTLSliding)
	}
}
