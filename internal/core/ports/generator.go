package ports

import "context"

// GenerateRequest is the input handed to a Generator.
type GenerateRequest struct {
	// Text is the (optionally pre-transformed) prompt text of the source unit.
	Text string
	// Name is the component name derived from the source basename.
	Name string
	// SystemPrompt overrides the default system prompt when non-empty.
	SystemPrompt string
}

// Generator is the external code-generation capability.
//
// Implementations may be slow and non-deterministic. Callers invoke Generate at most
// once per cache miss and do not retry.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type Generator interface {
	// Generate returns the generated text for the request.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// Name identifies the provider in logs and traces.
	Name() string
}
