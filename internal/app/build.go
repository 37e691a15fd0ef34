package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/promptx/internal/adapters/telemetry"
	"go.trai.ch/promptx/internal/adapters/tui"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/promptx/internal/engine/scheduler"
	"go.trai.ch/promptx/internal/ui/output"
	"go.trai.ch/zerr"
)

// Output modes for Build.
const (
	OutputAuto   = "auto"
	OutputTUI    = "tui"
	OutputLinear = "linear"
)

// BuildOptions configures Build and Watch.
type BuildOptions struct {
	// Concurrency overrides the configured number of parallel units when > 0.
	Concurrency int
	// OutputMode selects the progress view of Build. Watch always uses linear output.
	OutputMode string
}

// Build transforms every source unit found in paths. Directories are
// searched recursively; files must be source units. With no paths the
// working directory is searched.
func (a *App) Build(ctx context.Context, paths []string, opts BuildOptions) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg, err := a.loadConfig(paths[0])
	if err != nil {
		return err
	}

	assemble, err := a.pipelineFor(cfg)
	if err != nil {
		return err
	}

	sources, err := a.collectSources(paths)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		a.logger.Info("no promptx files found")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer, finish := a.batchRenderer(opts.OutputMode, sources, cancel)
	defer finish()

	tracer, shutdown := a.startTracing(renderer)
	defer shutdown()

	sched := scheduler.NewScheduler(assemble(tracer), renderer)
	_, err = sched.Run(ctx, sources, parallelism(cfg, opts))
	return err
}

// batchRenderer returns the renderer for a batch of units and a func that
// releases it.
func (a *App) batchRenderer(mode string, units []string, interrupt func()) (ports.Renderer, func()) {
	switch mode {
	case OutputTUI:
	case OutputLinear:
		return a.renderer, func() {}
	default:
		if !output.IsInteractive(os.Stderr) {
			return a.renderer, func() {}
		}
	}

	opts := append([]tea.ProgramOption{tea.WithOutput(os.Stderr)}, a.teaOptions...)
	r := tui.NewRenderer(units, interrupt, opts...)
	r.Start()
	return r, func() {
		r.Stop()
		_ = r.Wait()
	}
}

// Transform runs the pipeline for a single source unit and writes the
// artifact content to w.
func (a *App) Transform(ctx context.Context, path string, w io.Writer) error {
	if !domain.IsPromptFile(path) {
		return domain.Annotate(domain.ErrNotPromptFile, "path", path)
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}

	pl, err := a.newPipeline(cfg, telemetry.NewNoOpTracer())
	if err != nil {
		return err
	}

	res, err := pl.Transform(ctx, path)
	if err != nil {
		return err
	}

	if res.Cached {
		a.logger.Info(fmt.Sprintf("using cached artifact %s", res.ArtifactPath))
	} else {
		a.logger.Info(fmt.Sprintf("generated artifact %s", res.ArtifactPath))
	}

	if _, err := io.WriteString(w, res.Code); err != nil {
		return zerr.Wrap(err, "failed to write artifact")
	}
	return nil
}

// collectSources expands paths into a sorted, duplicate-free list of source units.
func (a *App) collectSources(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var sources []string
	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		sources = append(sources, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, zerr.With(domain.Classify(domain.ErrSourceUnreadable, err), "path", path)
		}
		if !info.IsDir() {
			if !domain.IsPromptFile(path) {
				return nil, domain.Annotate(domain.ErrNotPromptFile, "path", path)
			}
			add(path)
			continue
		}
		for source := range a.walker.WalkSources(path) {
			add(source)
		}
	}

	slices.Sort(sources)
	return sources, nil
}

// startTracing installs a tracer provider that reports pipeline spans to renderer.
func (a *App) startTracing(renderer ports.Renderer) (ports.Tracer, func()) {
	tp := telemetry.Setup(telemetry.NewBridge(renderer))
	return telemetry.NewTracer(tp), func() {
		_ = tp.Shutdown(context.Background())
	}
}

func parallelism(cfg domain.Config, opts BuildOptions) int {
	if opts.Concurrency > 0 {
		return opts.Concurrency
	}
	return cfg.Concurrency
}
