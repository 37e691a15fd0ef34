package watcher

import (
	"slices"
	"sync"
	"time"
)

// Debouncer collects changed source paths and hands them to a callback once
// no new path has arrived for the configured window. Each batch holds every
// distinct path seen since the previous batch, sorted.
type Debouncer struct {
	window time.Duration
	onIdle func(paths []string)

	mu      sync.Mutex
	changed map[string]struct{}
	timer   *time.Timer
	epoch   uint64
	stopped bool
}

// NewDebouncer returns a Debouncer that calls onIdle after window of quiet.
// A nil onIdle discards batches.
func NewDebouncer(window time.Duration, onIdle func(paths []string)) *Debouncer {
	return &Debouncer{
		window:  window,
		onIdle:  onIdle,
		changed: make(map[string]struct{}),
	}
}

// Add records path and restarts the quiet window. Adds after Stop are ignored.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.changed[path] = struct{}{}

	d.epoch++
	epoch := d.epoch
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.expire(epoch) })
}

// expire runs the callback for the window identified by epoch, unless a
// later Add, Flush or Stop superseded it.
func (d *Debouncer) expire(epoch uint64) {
	d.mu.Lock()
	if d.stopped || epoch != d.epoch {
		d.mu.Unlock()
		return
	}
	batch := d.takeLocked()
	d.mu.Unlock()

	d.deliver(batch, true)
}

// Flush delivers the pending paths now and waits for the callback.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	batch := d.takeLocked()
	d.mu.Unlock()

	d.deliver(batch, false)
}

// Stop drops the pending paths. No callback starts after Stop returns.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.takeLocked()
}

// takeLocked cancels the timer and returns the pending paths sorted.
// d.mu must be held.
func (d *Debouncer) takeLocked() []string {
	d.epoch++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if len(d.changed) == 0 {
		return nil
	}
	batch := make([]string, 0, len(d.changed))
	for path := range d.changed {
		batch = append(batch, path)
	}
	clear(d.changed)
	slices.Sort(batch)
	return batch
}

func (d *Debouncer) deliver(batch []string, async bool) {
	if len(batch) == 0 || d.onIdle == nil {
		return
	}
	if async {
		go d.onIdle(batch)
		return
	}
	d.onIdle(batch)
}
