// Package asynchook decouples hook consumers from cache hot paths.
//
// The cache calls hooks synchronously, so a slow consumer (logging,
// metrics push) would stall reads and writes. Wrapping it here moves
// delivery onto worker goroutines behind a bounded queue. When the
// queue is full events are dropped rather than blocking the cache.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    ExpireEvery: 10, // sample logs: ~every 10th expiry
//	    EvictEvery:  1,  // log every eviction
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	reg := fondue.NewRegistry(fondue.RegistryOptions{
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/ParkBlake/fondue"
)

type Hooks struct {
	inner fondue.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ fondue.Hooks = (*Hooks)(nil)

func New(inner fondue.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to drain.
// Safe to call more than once.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) EntryExpired(cache string, key, value any) {
	h.try(func() { h.inner.EntryExpired(cache, key, value) })
}

func (h *Hooks) EntryEvicted(cache string, key, value any) {
	h.try(func() { h.inner.EntryEvicted(cache, key, value) })
}
