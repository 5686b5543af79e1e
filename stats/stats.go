// Package stats defines the statistics snapshots caches publish and a
// Collector that aggregates them across an application.
//
// Caches push a fresh Snapshot to their configured Sink after every
// operation. Publication is fire-and-forget: counters are read with
// relaxed atomics and the entry count may lag behind concurrent writers,
// so a Snapshot is eventually consistent, not a linearizable view.
package stats

import "encoding/json"

// Snapshot is a point-in-time view of a single cache's counters.
type Snapshot struct {
	Name    string  `json:"name"`
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	Entries uint64  `json:"entries"`
	HitRate float64 `json:"hit_rate"`
}

// TotalRequests returns the number of lookups the snapshot covers.
func (s Snapshot) TotalRequests() uint64 {
	return s.Hits + s.Misses
}

// MarshalJSON emits the snapshot with a derived total_requests field so
// exported reports carry it without callers recomputing.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	type snapshot Snapshot
	return json.Marshal(struct {
		snapshot
		TotalRequests uint64 `json:"total_requests"`
	}{
		snapshot:      snapshot(s),
		TotalRequests: s.TotalRequests(),
	})
}

// Sink receives cache snapshots. Implementations must be safe for
// concurrent use and should return quickly; caches call Register on
// their hot path.
type Sink interface {
	Register(name string, snap Snapshot)
}

// NopSink discards every snapshot. It is the default sink for caches
// constructed without one.
type NopSink struct{}

// Register implements Sink as a no-op.
func (NopSink) Register(string, Snapshot) {}
