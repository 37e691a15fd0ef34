// Package config provides the configuration loader for promptx.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches cwd and its parents for promptx.yaml. When none is found the
// defaults are returned with cwd as the root.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		cfg := domain.DefaultConfig()
		cfg.Root = filepath.Clean(cwd)
		return cfg, nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration at path.
func (l *Loader) LoadFile(path string) (domain.Config, error) {
	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	cfg, err := l.toDomain(&file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	cfg.Root = filepath.Dir(filepath.Clean(path))

	return cfg, nil
}

func (l *Loader) toDomain(file *File) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	cfg.Model.Provider = file.Model.Provider
	cfg.Model.Name = file.Model.Name
	cfg.Model.BaseURL = file.Model.BaseURL
	cfg.Model.APIKeyEnv = file.Model.APIKeyEnv
	cfg.Model.Command = file.Model.Command
	if file.Model.MaxTokens > 0 {
		cfg.Model.MaxTokens = file.Model.MaxTokens
	}
	if cfg.Model.Provider == "" && len(cfg.Model.Command) > 0 {
		cfg.Model.Provider = domain.ProviderCommand
	}

	cfg.SystemPrompt = file.SystemPrompt
	cfg.Prepend = file.Transform.Prepend
	cfg.Append = file.Transform.Append

	if file.ArtifactExt != "" {
		if !domain.ValidArtifactExt(file.ArtifactExt) {
			return domain.Config{}, domain.Annotate(domain.ErrInvalidArtifactExt, "artifactExt", file.ArtifactExt)
		}
		cfg.ArtifactExt = file.ArtifactExt
	}

	if file.TypeScript != nil {
		cfg.TypeScript = *file.TypeScript
		if !cfg.TypeScript {
			l.Logger.Warn(fmt.Sprintf("'typescript: false' in %s has no effect", domain.ConfigFileName))
		}
	}

	switch file.Checksum {
	case "":
	case domain.ChecksumMD5, domain.ChecksumXXHash:
		cfg.Checksum = file.Checksum
	default:
		return domain.Config{}, domain.Annotate(domain.ErrUnknownChecksum, "algorithm", file.Checksum)
	}

	if file.Concurrency > 0 {
		cfg.Concurrency = file.Concurrency
	}

	if file.Watch.Debounce != "" {
		d, err := time.ParseDuration(file.Watch.Debounce)
		if err != nil || d < 0 {
			return domain.Config{}, domain.Annotate(domain.ErrInvalidDebounce, "debounce", file.Watch.Debounce)
		}
		cfg.Debounce = d
	}

	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or given on the command line
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}
