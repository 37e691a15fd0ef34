// Package plugin exposes the transform pipeline through the contract of a
// host build tool plugin.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
)

var errFileNotFound = zerr.New("file not found")

// TransformResult is handed back to the host for a transformed module.
type TransformResult struct {
	Code string `json:"code"`
	// Map is always null; generated code has no meaningful source map.
	Map *string `json:"map"`
}

// Hook implements the host-facing hook operations.
type Hook struct {
	transformer ports.Transformer
	reader      ports.SourceReader
	logger      ports.Logger
}

// NewHook creates a new Hook.
func NewHook(transformer ports.Transformer, reader ports.SourceReader, logger ports.Logger) *Hook {
	return &Hook{
		transformer: transformer,
		reader:      reader,
		logger:      logger,
	}
}

// Transform returns the generated module for a promptx id.
// It returns nil, nil for other ids and for failed units, which are logged so
// the host build can continue. The host-supplied content is ignored; the
// source is always read fresh from disk. A non-nil error is only returned
// when ctx is done.
func (h *Hook) Transform(ctx context.Context, _ string, id string) (*TransformResult, error) {
	if !domain.IsPromptFile(id) {
		return nil, nil
	}

	res, err := h.transformer.Transform(ctx, id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		h.logger.Error(zerr.With(err, "id", id))
		return nil, nil
	}

	if res.Cached {
		h.logger.Info(fmt.Sprintf("using cached component %s (%s)", id, res.ArtifactPath))
	} else {
		h.logger.Info(fmt.Sprintf("generated component %s (%s)", id, res.ArtifactPath))
	}
	return &TransformResult{Code: res.Code}, nil
}

// ResolveID resolves a relative promptx reference against the importer's directory.
// It returns "" for ids it does not handle.
func (h *Hook) ResolveID(id, importer string) (string, error) {
	if !domain.IsPromptFile(id) {
		return "", nil
	}
	if !strings.HasPrefix(id, ".") || importer == "" {
		return "", nil
	}

	resolved := filepath.Join(filepath.Dir(importer), id)
	if abs, err := filepath.Abs(resolved); err == nil {
		resolved = abs
	}

	if !h.reader.Exists(resolved) {
		cause := zerr.With(zerr.With(errFileNotFound, "id", id), "resolved", resolved)
		return "", errors.Join(domain.ErrResolution, cause)
	}
	return resolved, nil
}

// HostConfig is the configuration contributed to the host build tool.
type HostConfig struct {
	Resolve ResolveConfig `json:"resolve"`
	Esbuild EsbuildConfig `json:"esbuild"`
	JSX     string        `json:"jsx"`
	Watch   []string      `json:"watch"`
}

// ResolveConfig lists the module extensions the host resolves.
type ResolveConfig struct {
	Extensions []string `json:"extensions"`
}

// EsbuildConfig maps promptx modules to a loader.
type EsbuildConfig struct {
	Include string `json:"include"`
	Loader  string `json:"loader"`
}

// NewHostConfig registers promptx ahead of the host's own extensions.
func NewHostConfig(hostExtensions []string) HostConfig {
	exts := make([]string, 0, len(hostExtensions)+1)
	exts = append(exts, domain.SourceExt)
	exts = append(exts, hostExtensions...)

	return HostConfig{
		Resolve: ResolveConfig{Extensions: exts},
		Esbuild: EsbuildConfig{
			Include: `\` + domain.SourceExt + `$`,
			Loader:  "tsx",
		},
		JSX:   "preserve",
		Watch: []string{domain.WatchGlob},
	}
}
