package generator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables exported to command generators.
const (
	EnvName         = "PROMPTX_NAME"
	EnvSystemPrompt = "PROMPTX_SYSTEM_PROMPT"
	EnvText         = "PROMPTX_TEXT"
)

var _ ports.Generator = (*Command)(nil)

// Command generates code by running a local program. The user prompt is
// written to its stdin and stdout is taken as the model output.
type Command struct {
	argv []string
}

// NewCommand creates a Command generator for argv.
func NewCommand(argv []string) *Command {
	return &Command{argv: argv}
}

// Name returns the provider and program name.
func (c *Command) Name() string {
	if len(c.argv) == 0 {
		return domain.ProviderCommand
	}
	return domain.ProviderCommand + ":" + c.argv[0]
}

// Generate runs the program once and returns its standard output.
func (c *Command) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	if len(c.argv) == 0 {
		return "", domain.ErrMissingCommand
	}

	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...) //nolint:gosec // user configured command
	cmd.Env = append(os.Environ(),
		EnvName+"="+req.Name,
		EnvSystemPrompt+"="+domain.SystemPromptOrDefault(req.SystemPrompt),
		EnvText+"="+req.Text,
	)
	cmd.Stdin = strings.NewReader(domain.UserPrompt(req.Name, req.Text))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return "", zerr.With(err, "command", c.argv[0])
	}

	if strings.TrimSpace(stdout.String()) == "" {
		return "", domain.Annotate(domain.ErrEmptyGeneration, "command", c.argv[0])
	}

	return stdout.String(), nil
}
