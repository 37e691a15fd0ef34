package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/promptx/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/promptx/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/promptx/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/promptx/internal/adapters/generator" //nolint:depguard // Wired in app layer
	"go.trai.ch/promptx/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/promptx/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/promptx/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/promptx/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.ReaderNodeID,
			fs.WalkerNodeID,
			cas.NodeID,
			watcher.NodeID,
			linear.NodeID,
			generator.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	reader, err := graft.Dep[ports.SourceReader](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}
	factory, err := graft.Dep[generator.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, reader, store, walker, w, renderer, factory), nil
}
