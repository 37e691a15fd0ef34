// Package app implements the application layer for promptx.
package app

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/promptx/internal/adapters/checksum"
	"go.trai.ch/promptx/internal/adapters/fs"
	"go.trai.ch/promptx/internal/adapters/generator"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/promptx/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	reader       ports.SourceReader
	store        ports.ArtifactStore
	walker       *fs.Walker
	watcher      ports.Watcher
	renderer     ports.Renderer
	generators   generator.Factory

	configFile string
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	reader ports.SourceReader,
	store ports.ArtifactStore,
	walker *fs.Walker,
	watcher ports.Watcher,
	renderer ports.Renderer,
	generators generator.Factory,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		reader:       reader,
		store:        store,
		walker:       walker,
		watcher:      watcher,
		renderer:     renderer,
		generators:   generators,
	}
}

// WithGeneratorFactory replaces the factory used to build the generator
// from the model configuration.
func (a *App) WithGeneratorFactory(f generator.Factory) *App {
	a.generators = f
	return a
}

// WithTeaOptions sets the Bubble Tea program options used by the interactive build view.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// SetConfigFile makes the App read its configuration from path instead of
// discovering promptx.yaml. An empty path restores discovery.
func (a *App) SetConfigFile(path string) {
	a.configFile = path
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enabled bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}

// loadConfig resolves the configuration for work rooted at dir.
func (a *App) loadConfig(dir string) (domain.Config, error) {
	if a.configFile != "" {
		cfg, err := a.configLoader.LoadFile(a.configFile)
		if err != nil {
			return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
		}
		return cfg, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cfg, err := a.configLoader.Load(abs)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// newPipeline assembles a pipeline for cfg. It fails when no model is configured.
func (a *App) newPipeline(cfg domain.Config, tracer ports.Tracer) (*pipeline.Pipeline, error) {
	assemble, err := a.pipelineFor(cfg)
	if err != nil {
		return nil, err
	}
	return assemble(tracer), nil
}

// pipelineFor resolves the checksum and generator of cfg and returns a func
// that assembles a pipeline around a tracer. Configuration errors such as a
// missing model surface here, before any source is read.
func (a *App) pipelineFor(cfg domain.Config) (func(ports.Tracer) *pipeline.Pipeline, error) {
	sum, err := checksum.New(cfg.Checksum)
	if err != nil {
		return nil, err
	}

	gen, err := a.generators(cfg.Model)
	if err != nil {
		return nil, err
	}

	return func(tracer ports.Tracer) *pipeline.Pipeline {
		opts := append(pipeline.FromConfig(cfg), pipeline.WithTracer(tracer))
		return pipeline.New(a.reader, a.store, sum, gen, a.logger, opts...)
	}, nil
}
