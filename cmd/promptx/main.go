// Package main is the entry point for the promptx CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/promptx/cmd/promptx/commands"
	"go.trai.ch/promptx/internal/app"
	"go.trai.ch/promptx/internal/core/domain"
	_ "go.trai.ch/promptx/internal/wiring"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	cli.SetInput(os.Stdin)

	err = cli.Execute(ctx)
	switch {
	case err == nil:
		return exitOK
	case ctx.Err() != nil:
		// Interrupted runs report nothing beyond what the renderer printed.
		return exitInterrupted
	case errors.Is(err, domain.ErrBuildFailed):
		// Failed units were already reported individually.
		return exitFailure
	default:
		components.Logger.Error(err)
		return exitFailure
	}
}
