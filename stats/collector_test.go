package stats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotTotalRequests(t *testing.T) {
	s := Snapshot{Hits: 80, Misses: 20}
	assert.Equal(t, uint64(100), s.TotalRequests())
	assert.Equal(t, uint64(0), Snapshot{}.TotalRequests())
}

func TestSnapshotJSON(t *testing.T) {
	s := Snapshot{Name: "users::lru(8)", Hits: 3, Misses: 1, Entries: 2, HitRate: 0.75}
	b, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "users::lru(8)", decoded["name"])
	assert.Equal(t, float64(3), decoded["hits"])
	assert.Equal(t, float64(1), decoded["misses"])
	assert.Equal(t, float64(2), decoded["entries"])
	assert.Equal(t, 0.75, decoded["hit_rate"])
	assert.Equal(t, float64(4), decoded["total_requests"])
}

func TestCollectorRegisterAndGet(t *testing.T) {
	c := NewCollector()

	_, ok := c.Get("users")
	assert.False(t, ok)

	c.Register("users", Snapshot{Name: "users", Hits: 1})
	snap, ok := c.Get("users")
	require.True(t, ok)
	assert.Equal(t, uint64(1), snap.Hits)

	// Later registrations overwrite.
	c.Register("users", Snapshot{Name: "users", Hits: 5, Misses: 2})
	snap, ok = c.Get("users")
	require.True(t, ok)
	assert.Equal(t, uint64(5), snap.Hits)
	assert.Equal(t, uint64(2), snap.Misses)
	assert.Equal(t, 1, c.Len())
}

func TestCollectorNames(t *testing.T) {
	c := NewCollector()
	c.Register("b", Snapshot{Name: "b"})
	c.Register("a", Snapshot{Name: "a"})
	c.Register("c", Snapshot{Name: "c"})
	assert.Equal(t, []string{"a", "b", "c"}, c.Names())
}

func TestCollectorRemoveAndClear(t *testing.T) {
	c := NewCollector()
	c.Register("a", Snapshot{Name: "a", Hits: 1})
	c.Register("b", Snapshot{Name: "b", Hits: 2})

	snap, ok := c.Remove("a")
	require.True(t, ok)
	assert.Equal(t, uint64(1), snap.Hits)
	_, ok = c.Remove("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
}

func TestCollectorAggregate(t *testing.T) {
	c := NewCollector()

	agg := c.Aggregate()
	assert.Equal(t, AggregateName, agg.Name)
	assert.Equal(t, 0.0, agg.HitRate, "empty collector aggregates to zero hit rate")

	c.Register("a", Snapshot{Name: "a", Hits: 80, Misses: 20, Entries: 5})
	c.Register("b", Snapshot{Name: "b", Hits: 20, Misses: 80, Entries: 7})

	agg = c.Aggregate()
	assert.Equal(t, uint64(100), agg.Hits)
	assert.Equal(t, uint64(100), agg.Misses)
	assert.Equal(t, uint64(12), agg.Entries)
	assert.Equal(t, 0.5, agg.HitRate)
}

func TestWriteReport(t *testing.T) {
	c := NewCollector()

	var empty strings.Builder
	require.NoError(t, c.WriteReport(&empty))
	assert.Contains(t, empty.String(), "no cache statistics recorded")

	c.Register("users::lru(8)", Snapshot{Name: "users::lru(8)", Hits: 3, Misses: 1, Entries: 2, HitRate: 0.75})

	var out strings.Builder
	require.NoError(t, c.WriteReport(&out))
	report := out.String()
	assert.Contains(t, report, "=== Cache Statistics ===")
	assert.Contains(t, report, "Cache Stats: users::lru(8)")
	assert.Contains(t, report, "Hit Rate:       75.00%")
	assert.Contains(t, report, "Total Requests: 4")
	assert.Contains(t, report, "Cache Stats: "+AggregateName)
}

func TestWriteTable(t *testing.T) {
	c := NewCollector()
	longName := "a-namespace-with-a-very-long-name::lru(100)"
	c.Register(longName, Snapshot{Name: longName, Hits: 1, Misses: 1, HitRate: 0.5})

	var out strings.Builder
	require.NoError(t, c.WriteTable(&out))
	table := out.String()
	assert.Contains(t, table, "┌")
	assert.Contains(t, table, "└")
	assert.Contains(t, table, "Hit Rate")
	assert.Contains(t, table, "50.00%")
	assert.Contains(t, table, "a-namespace-with-a-v...")
	assert.NotContains(t, table, longName, "long names are truncated in the table")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 23))
	assert.Equal(t, strings.Repeat("x", 23), truncate(strings.Repeat("x", 23), 23))
	assert.Equal(t, strings.Repeat("x", 20)+"...", truncate(strings.Repeat("x", 30), 23))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestExportJSON(t *testing.T) {
	c := NewCollector()
	c.Register("b", Snapshot{Name: "b", Hits: 2, Misses: 2, HitRate: 0.5})
	c.Register("a", Snapshot{Name: "a", Hits: 1})

	b, err := c.ExportJSON()
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "a", decoded[0]["name"], "export is sorted by cache name")
	assert.Equal(t, "b", decoded[1]["name"])
	assert.Equal(t, float64(4), decoded[1]["total_requests"])
}
