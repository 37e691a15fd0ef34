package pipeline

import (
	"context"
	"sync"
)

// leases is a keyed mutex. Entries exist only while a key is held or awaited.
type leases struct {
	mu      sync.Mutex
	entries map[string]*lease
}

type lease struct {
	sem  chan struct{}
	refs int
}

func newLeases() *leases {
	return &leases{entries: make(map[string]*lease)}
}

// acquire blocks until key is free or ctx is done.
// The returned release func must be called exactly once.
func (l *leases) acquire(ctx context.Context, key string) (release func(), err error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &lease{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		return func() {
			<-e.sem
			l.unref(key, e)
		}, nil
	case <-ctx.Done():
		l.unref(key, e)
		return nil, ctx.Err()
	}
}

func (l *leases) unref(key string, e *lease) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// size returns the number of live entries.
func (l *leases) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
