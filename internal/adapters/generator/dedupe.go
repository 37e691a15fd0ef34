package generator

import (
	"context"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/promptx/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var _ ports.Generator = (*Deduplicated)(nil)

// Deduplicated collapses identical concurrent requests into one call to the
// wrapped generator. Source units with the same name and text in different
// directories then share a single model call.
//
// The shared call runs on a context that keeps the first caller's values and
// is canceled only once every waiting caller has given up. A caller whose own
// context ends returns immediately without affecting the others.
type Deduplicated struct {
	next  ports.Generator
	group singleflight.Group

	mu      sync.Mutex
	flights map[string]*flight
}

type flight struct {
	ctx     context.Context //nolint:containedctx // outlives any single caller
	cancel  context.CancelFunc
	waiters int
}

// NewDeduplicated wraps next.
func NewDeduplicated(next ports.Generator) *Deduplicated {
	return &Deduplicated{next: next, flights: make(map[string]*flight)}
}

// Name returns the wrapped generator's name.
func (d *Deduplicated) Name() string {
	return d.next.Name()
}

// Generate forwards req, sharing the result with identical in-flight requests.
func (d *Deduplicated) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	key := requestKey(req)

	for attempt := 0; ; attempt++ {
		f, ch := d.join(ctx, key, req)

		select {
		case res := <-ch:
			d.leave(key, f)
			// A caller can join a call that its previous waiters abandoned
			// just before it finished. Run it once more on our own behalf.
			if res.Err != nil && attempt == 0 && ctx.Err() == nil && errors.Is(res.Err, context.Canceled) {
				continue
			}
			if res.Err != nil {
				return "", res.Err
			}
			return res.Val.(string), nil //nolint:forcetypeassert // only strings are stored
		case <-ctx.Done():
			d.leave(key, f)
			return "", ctx.Err()
		}
	}
}

func (d *Deduplicated) join(ctx context.Context, key string, req ports.GenerateRequest) (*flight, <-chan singleflight.Result) {
	d.mu.Lock()
	defer d.mu.Unlock()

	f := d.flights[key]
	if f == nil {
		callCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: callCtx, cancel: cancel}
		d.flights[key] = f
	}
	f.waiters++

	ch := d.group.DoChan(key, func() (any, error) {
		defer d.forget(key, f)
		return d.next.Generate(f.ctx, req)
	})
	return f, ch
}

// leave drops one waiter and cancels the shared call when none remain.
func (d *Deduplicated) leave(key string, f *flight) {
	d.mu.Lock()
	defer d.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if d.flights[key] == f {
		delete(d.flights, key)
	}
}

// forget detaches a finished call so later requests start a new flight.
func (d *Deduplicated) forget(key string, f *flight) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.flights[key] == f {
		delete(d.flights, key)
	}
}

func requestKey(req ports.GenerateRequest) string {
	h := xxhash.New()
	_, _ = h.WriteString(req.Name)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(req.SystemPrompt)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(req.Text)
	return string(h.Sum(nil))
}
