package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

// AggregateName is the synthetic cache name used for collector-wide
// totals produced by Aggregate.
const AggregateName = "aggregate"

// Collector is a Sink that retains the latest snapshot per cache name.
// Later registrations under the same name overwrite earlier ones.
type Collector struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

var _ Sink = (*Collector)(nil)

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{snaps: make(map[string]Snapshot)}
}

// Register stores snap as the current snapshot for name.
func (c *Collector) Register(name string, snap Snapshot) {
	c.mu.Lock()
	c.snaps[name] = snap
	c.mu.Unlock()
}

// Get returns the latest snapshot registered under name.
func (c *Collector) Get(name string) (Snapshot, bool) {
	c.mu.RLock()
	snap, ok := c.snaps[name]
	c.mu.RUnlock()
	return snap, ok
}

// All returns a copy of every retained snapshot keyed by cache name.
func (c *Collector) All() map[string]Snapshot {
	c.mu.RLock()
	out := make(map[string]Snapshot, len(c.snaps))
	for name, snap := range c.snaps {
		out[name] = snap
	}
	c.mu.RUnlock()
	return out
}

// Names returns the registered cache names in sorted order.
func (c *Collector) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.snaps))
	for name := range c.snaps {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of caches with a retained snapshot.
func (c *Collector) Len() int {
	c.mu.RLock()
	n := len(c.snaps)
	c.mu.RUnlock()
	return n
}

// Remove drops the snapshot for name, returning it if it was present.
func (c *Collector) Remove(name string) (Snapshot, bool) {
	c.mu.Lock()
	snap, ok := c.snaps[name]
	if ok {
		delete(c.snaps, name)
	}
	c.mu.Unlock()
	return snap, ok
}

// Clear drops every retained snapshot.
func (c *Collector) Clear() {
	c.mu.Lock()
	c.snaps = make(map[string]Snapshot)
	c.mu.Unlock()
}

// Aggregate sums all retained snapshots into a single snapshot named
// AggregateName. The hit rate is recomputed from the summed counters.
func (c *Collector) Aggregate() Snapshot {
	agg := Snapshot{Name: AggregateName}
	c.mu.RLock()
	for _, snap := range c.snaps {
		agg.Hits += snap.Hits
		agg.Misses += snap.Misses
		agg.Entries += snap.Entries
	}
	c.mu.RUnlock()
	if total := agg.Hits + agg.Misses; total > 0 {
		agg.HitRate = float64(agg.Hits) / float64(total)
	}
	return agg
}

// WriteReport writes a plain-text block per cache, sorted by name, then
// an aggregate block. With no snapshots it writes a single notice line.
func (c *Collector) WriteReport(w io.Writer) error {
	all := c.All()
	if len(all) == 0 {
		_, err := fmt.Fprintln(w, "no cache statistics recorded")
		return err
	}
	if _, err := fmt.Fprintln(w, "=== Cache Statistics ==="); err != nil {
		return err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writeBlock(w, all[name]); err != nil {
			return err
		}
	}
	return writeBlock(w, c.Aggregate())
}

func writeBlock(w io.Writer, s Snapshot) error {
	_, err := fmt.Fprintf(w,
		"Cache Stats: %s\n  Entries:        %d\n  Hits:           %d\n  Misses:         %d\n  Hit Rate:       %.2f%%\n  Total Requests: %d\n",
		s.Name, s.Entries, s.Hits, s.Misses, s.HitRate*100, s.TotalRequests())
	return err
}

const tableNameWidth = 23

// WriteTable writes all snapshots as a box-drawn table sorted by cache
// name. Names longer than the name column are truncated with an
// ellipsis.
func (c *Collector) WriteTable(w io.Writer) error {
	all := c.All()
	if len(all) == 0 {
		_, err := fmt.Fprintln(w, "no cache statistics recorded")
		return err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintln(w, "┌─────────────────────────┬──────────┬──────────┬──────────┬──────────┐"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "│ %-*s │ %-8s │ %-8s │ %-8s │ %-8s │\n",
		tableNameWidth, "Cache", "Entries", "Hits", "Misses", "Hit Rate"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "├─────────────────────────┼──────────┼──────────┼──────────┼──────────┤"); err != nil {
		return err
	}
	for _, name := range names {
		s := all[name]
		rate := fmt.Sprintf("%.2f%%", s.HitRate*100)
		if _, err := fmt.Fprintf(w, "│ %-*s │ %-8d │ %-8d │ %-8d │ %-8s │\n",
			tableNameWidth, truncate(s.Name, tableNameWidth), s.Entries, s.Hits, s.Misses, rate); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "└─────────────────────────┴──────────┴──────────┴──────────┴──────────┘")
	return err
}

// truncate shortens s to at most max runes, replacing the tail with an
// ellipsis when it does not fit.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// ExportJSON renders every snapshot, sorted by cache name, as an
// indented JSON array.
func (c *Collector) ExportJSON() ([]byte, error) {
	all := c.All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Snapshot, 0, len(names))
	for _, name := range names {
		out = append(out, all[name])
	}
	return json.MarshalIndent(out, "", "  ")
}
