package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/promptx/internal/adapters/watcher"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// Watch builds every source unit below dir, then rebuilds changed units
// until ctx is done. Failed units are reported and do not stop watching.
func (a *App) Watch(ctx context.Context, dir string, opts BuildOptions) error {
	if dir == "" {
		dir = "."
	}

	cfg, err := a.loadConfig(dir)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}

	tracer, shutdown := a.startTracing(a.renderer)
	defer shutdown()

	pl, err := a.newPipeline(cfg, tracer)
	if err != nil {
		return err
	}
	sched := scheduler.NewScheduler(pl, a.renderer)
	limit := parallelism(cfg, opts)

	var (
		mu      sync.Mutex
		stopped bool
		wg      sync.WaitGroup
	)
	build := func(paths []string) {
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		wg.Add(1)
		mu.Unlock()
		defer wg.Done()

		// Unit failures are already reported through the renderer.
		_, _ = sched.Run(ctx, paths, limit)
	}

	if initial := a.walker.Collect(root); len(initial) > 0 {
		build(initial)
	}

	if err := a.watcher.Start(ctx, root, domain.WatchGlob); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()
	a.logger.Info(fmt.Sprintf("watching %s for changes", root))

	debouncer := watcher.NewDebouncer(cfg.Debounce, func(paths []string) {
		paths = slices.DeleteFunc(paths, func(p string) bool { return !a.reader.Exists(p) })
		if len(paths) > 0 {
			build(paths)
		}
	})

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	debouncer.Stop()
	mu.Lock()
	stopped = true
	mu.Unlock()
	wg.Wait()

	return nil
}
