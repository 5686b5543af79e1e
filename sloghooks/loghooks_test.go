package sloghooks

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newBufLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), &buf
}

func TestLogsEvents(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{})

	h.EntryExpired("users::ttl(1m0s,fixed)", "user:42", nil)
	h.EntryEvicted("users::lru(8)", "user:43", nil)

	out := buf.String()
	if !strings.Contains(out, "fondue.entry_expired") {
		t.Fatalf("expiry event not logged:\n%s", out)
	}
	if !strings.Contains(out, "fondue.entry_evicted") {
		t.Fatalf("eviction event not logged:\n%s", out)
	}
	if !strings.Contains(out, "users::lru(8)") {
		t.Fatalf("cache name missing:\n%s", out)
	}
}

// TestKeysRedacted: raw keys are identifiers; only a hash prefix may be
// logged.
func TestKeysRedacted(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{})

	h.EntryExpired("c", "user:secret-id", nil)
	if strings.Contains(buf.String(), "secret-id") {
		t.Fatalf("raw key leaked into log:\n%s", buf.String())
	}

	buf.Reset()
	custom := New(l, Options{Redact: func(k string) string { return "len:" + string(rune('0'+len(k)%10)) }})
	custom.EntryExpired("c", "abc", nil)
	if !strings.Contains(buf.String(), "len:3") {
		t.Fatalf("custom redactor not applied:\n%s", buf.String())
	}
}

func TestSampling(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{ExpireEvery: 5})

	for i := 0; i < 10; i++ {
		h.EntryExpired("c", i, nil)
	}
	if got := strings.Count(buf.String(), "fondue.entry_expired"); got != 2 {
		t.Fatalf("sampled log lines = %d; want 2 of 10", got)
	}

	buf.Reset()
	all := New(l, Options{ExpireEvery: 1})
	for i := 0; i < 4; i++ {
		all.EntryExpired("c", i, nil)
	}
	if got := strings.Count(buf.String(), "fondue.entry_expired"); got != 4 {
		t.Fatalf("unsampled log lines = %d; want 4", got)
	}
}

func TestNilLoggerSafe(t *testing.T) {
	h := New(nil, Options{})
	h.EntryExpired("c", "k", nil) // must not panic
	h.EntryEvicted("c", "k", nil)
}
