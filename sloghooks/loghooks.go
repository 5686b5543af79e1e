// Package sloghooks logs cache removal events through log/slog, with
// sampling to keep hot caches from flooding the log and key redaction
// so raw cache keys (often user identifiers) never land in log lines.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ParkBlake/fondue"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ExpireEvery uint64
	EvictEvery  uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	expireCtr atomic.Uint64
	evictCtr  atomic.Uint64
}

var _ fondue.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(key any) string {
	k := fmt.Sprint(key)
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) EntryExpired(cache string, key, _ any) {
	if h.l == nil || !sample(h.opts.ExpireEvery, &h.expireCtr) {
		return
	}
	h.l.Debug("fondue.entry_expired",
		"cache", cache,
		"key", h.redact(key))
}

func (h *Hooks) EntryEvicted(cache string, key, _ any) {
	if h.l == nil || !sample(h.opts.EvictEvery, &h.evictCtr) {
		return
	}
	h.l.Debug("fondue.entry_evicted",
		"cache", cache,
		"key", h.redact(key))
}
