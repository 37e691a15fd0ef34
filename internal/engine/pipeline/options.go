package pipeline

import (
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTracer sets the tracer used for pipeline spans.
func WithTracer(tracer ports.Tracer) Option {
	return func(p *Pipeline) {
		p.tracer = tracer
	}
}

// WithTransform sets the pre-transform applied to source text before generation.
// It does not affect the checksum.
func WithTransform(transform domain.PromptTransform) Option {
	return func(p *Pipeline) {
		if transform != nil {
			p.transform = transform
		}
	}
}

// WithSystemPrompt overrides the default system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(p *Pipeline) {
		p.systemPrompt = prompt
	}
}

// WithArtifactExt sets the extension of stored artifacts.
func WithArtifactExt(ext string) Option {
	return func(p *Pipeline) {
		if ext != "" {
			p.ext = ext
		}
	}
}

// FromConfig returns the options described by cfg.
func FromConfig(cfg domain.Config) []Option {
	return []Option{
		WithTransform(cfg.Transform()),
		WithSystemPrompt(cfg.SystemPrompt),
		WithArtifactExt(cfg.ArtifactExt),
	}
}
