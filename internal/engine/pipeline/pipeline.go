// Package pipeline implements the cached prompt-to-code transform.
package pipeline

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Transformer = (*Pipeline)(nil)

// Pipeline resolves source units to artifacts, generating on cache misses.
// It is safe for concurrent use.
type Pipeline struct {
	reader      ports.SourceReader
	store       ports.ArtifactStore
	checksummer ports.Checksummer
	generator   ports.Generator
	logger      ports.Logger
	tracer      ports.Tracer

	transform    domain.PromptTransform
	systemPrompt string
	ext          string

	leases *leases
}

// New creates a Pipeline. Without options it uses the default system prompt,
// the identity pre-transform and DefaultArtifactExt.
func New(
	reader ports.SourceReader,
	store ports.ArtifactStore,
	checksummer ports.Checksummer,
	generator ports.Generator,
	logger ports.Logger,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		reader:      reader,
		store:       store,
		checksummer: checksummer,
		generator:   generator,
		logger:      logger,
		tracer:      noopTracer{},
		transform:   func(text string) string { return text },
		ext:         domain.DefaultArtifactExt,
		leases:      newLeases(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// run tracks the state of a single Transform call.
type run struct {
	span  ports.Span
	state domain.State
	res   domain.Result
}

func (r *run) to(state domain.State) {
	r.state = state
	r.span.AddEvent(state.String())
}

// fail moves through the failure state to StateFailed and records err.
func (r *run) fail(state domain.State, err error) (domain.Result, error) {
	r.to(state)
	r.to(domain.StateFailed)
	r.span.RecordError(err)
	r.res.State = domain.StateFailed
	r.res.Code = ""
	return r.res, err
}

func (r *run) done(code string, cached bool) (domain.Result, error) {
	r.to(domain.StateDone)
	r.res.State = domain.StateDone
	r.res.Code = code
	r.res.Cached = cached
	return r.res, nil
}

// Transform returns the artifact for the source unit at sourcePath.
// The generator is called at most once, and only when no artifact matches
// the current content. ctx is passed to the generator unchanged.
func (p *Pipeline) Transform(ctx context.Context, sourcePath string) (domain.Result, error) {
	ctx, span := p.tracer.Start(ctx, domain.SpanTransform)
	defer span.End()
	span.SetAttribute(domain.AttrSource, sourcePath)

	r := &run{span: span, state: domain.StateStart}
	res, err := p.transformUnit(ctx, r, sourcePath)

	span.SetAttribute(domain.AttrState, res.State.String())
	span.SetAttribute(domain.AttrCached, res.Cached)
	return res, err
}

func (p *Pipeline) transformUnit(ctx context.Context, r *run, sourcePath string) (domain.Result, error) {
	src, err := p.reader.Read(sourcePath)
	if err != nil {
		return r.fail(domain.StateSourceUnreadable, errors.Join(domain.ErrSourceUnreadable, err))
	}

	checksum := p.checksummer.Checksum(src.Content)
	artifact := domain.ArtifactPath(src.Path, checksum, p.ext)
	r.res.Checksum = checksum
	r.res.ArtifactPath = artifact
	r.span.SetAttribute(domain.AttrChecksum, checksum)
	r.to(domain.StateChecksumKnown)

	if content, hit, err := p.store.Lookup(artifact); err != nil {
		return r.fail(domain.StateStorageFailed, errors.Join(domain.ErrStorage, err))
	} else if hit {
		r.to(domain.StateCacheHit)
		return r.done(content, true)
	}
	r.to(domain.StateCacheMiss)

	// The cache directory must be writable before the model is paid for.
	cacheDir := domain.CacheDir(src.Path)
	if err := p.store.EnsureDirectory(cacheDir); err != nil {
		return r.fail(domain.StateStorageFailed, errors.Join(domain.ErrStorage, err))
	}

	release, err := p.leases.acquire(ctx, leaseKey(src))
	if err != nil {
		return r.fail(domain.StateGenerationFailed, errors.Join(domain.ErrGenerationFailed, err))
	}
	defer release()

	// A run holding the lease may have written the artifact while we waited.
	if content, hit, err := p.store.Lookup(artifact); err != nil {
		return r.fail(domain.StateStorageFailed, errors.Join(domain.ErrStorage, err))
	} else if hit {
		r.to(domain.StateCacheHit)
		return r.done(content, true)
	}

	r.to(domain.StateGenerating)
	text, err := p.generate(ctx, src)
	if err != nil {
		return r.fail(domain.StateGenerationFailed, errors.Join(domain.ErrGenerationFailed, err))
	}
	code := domain.ExtractCode(text)
	r.to(domain.StateGenerated)

	r.to(domain.StateWriteCache)
	if err := p.store.Write(artifact, code); err != nil {
		return r.fail(domain.StateStorageFailed, errors.Join(domain.ErrStorage, err))
	}

	r.to(domain.StateEvict)
	removed, err := p.store.EvictStale(cacheDir, src.Base(), artifact)
	if err != nil {
		p.logger.Warn(err.Error())
	}
	r.span.SetAttribute(domain.AttrEvicted, len(removed))

	return r.done(code, false)
}

func (p *Pipeline) generate(ctx context.Context, src domain.SourceUnit) (string, error) {
	ctx, span := p.tracer.Start(ctx, domain.SpanGenerate)
	defer span.End()
	span.SetAttribute(domain.AttrGenerator, p.generator.Name())

	text, err := p.generator.Generate(ctx, ports.GenerateRequest{
		Text:         p.transform(string(src.Content)),
		Name:         src.Name(),
		SystemPrompt: p.systemPrompt,
	})
	if err != nil {
		err = zerr.With(err, "source", src.Path)
		span.RecordError(err)
		return "", err
	}
	return text, nil
}

// leaseKey identifies the (cacheDir, basename) pair of src.
func leaseKey(src domain.SourceUnit) string {
	path := src.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.Join(domain.CacheDir(path), src.Base())
}
