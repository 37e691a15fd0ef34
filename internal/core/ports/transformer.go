package ports

import (
	"context"

	"go.trai.ch/promptx/internal/core/domain"
)

// Transformer turns a source unit into its generated artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks
type Transformer interface {
	// Transform returns the artifact for the source unit at sourcePath,
	// generating and caching it when no artifact matches the current content.
	Transform(ctx context.Context, sourcePath string) (domain.Result, error)
}
