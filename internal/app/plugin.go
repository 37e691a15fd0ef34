package app

import (
	"context"
	"encoding/json"
	"io"

	"go.trai.ch/promptx/internal/adapters/telemetry"
	"go.trai.ch/promptx/internal/plugin"
	"go.trai.ch/zerr"
)

// Serve answers plugin requests read from r until r is exhausted or ctx is
// done. It fails before reading anything when no model is configured.
func (a *App) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	cfg, err := a.loadConfig(".")
	if err != nil {
		return err
	}

	pl, err := a.newPipeline(cfg, telemetry.NewNoOpTracer())
	if err != nil {
		return err
	}

	hook := plugin.NewHook(pl, a.reader, a.logger)
	return plugin.NewServer(hook, a.logger, cfg.Concurrency).Serve(ctx, r, w)
}

// Resolve resolves a promptx reference relative to its importer. It returns
// "" when the reference is not handled.
func (a *App) Resolve(id, importer string) (string, error) {
	return plugin.NewHook(nil, a.reader, a.logger).ResolveID(id, importer)
}

// HostConfig writes the host build configuration as indented JSON.
func (a *App) HostConfig(w io.Writer, hostExtensions []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plugin.NewHostConfig(hostExtensions)); err != nil {
		return zerr.Wrap(err, "failed to encode host configuration")
	}
	return nil
}
