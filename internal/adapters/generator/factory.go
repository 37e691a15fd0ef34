package generator

import (
	"os"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
)

// Default API key environment variables per provider.
const (
	DefaultAnthropicKeyEnv = "ANTHROPIC_API_KEY"
	DefaultOpenAIKeyEnv    = "OPENAI_API_KEY"
)

// Factory builds a generator for a model configuration.
type Factory func(model domain.ModelConfig) (ports.Generator, error)

// New builds the generator described by model, reading API keys from the
// process environment.
func New(model domain.ModelConfig) (ports.Generator, error) {
	return NewWithEnv(model, os.Getenv)
}

// NewWithEnv builds the generator described by model using getenv for API keys.
func NewWithEnv(model domain.ModelConfig, getenv func(string) string) (ports.Generator, error) {
	if !model.Configured() {
		if model.Provider == domain.ProviderCommand {
			return nil, domain.ErrMissingCommand
		}
		return nil, domain.ErrModelRequired
	}

	var gen ports.Generator
	switch model.Provider {
	case domain.ProviderAnthropic:
		key, err := apiKey(model, DefaultAnthropicKeyEnv, getenv)
		if err != nil {
			return nil, err
		}
		gen = NewAnthropic(model, key)
	case domain.ProviderOpenAI:
		key, err := apiKey(model, DefaultOpenAIKeyEnv, getenv)
		if err != nil {
			return nil, err
		}
		gen = NewOpenAI(model, key)
	case domain.ProviderCommand:
		gen = NewCommand(model.Command)
	default:
		return nil, domain.Annotate(domain.ErrUnknownProvider, "provider", model.Provider)
	}

	return NewDeduplicated(gen), nil
}

func apiKey(model domain.ModelConfig, fallback string, getenv func(string) string) (string, error) {
	env := model.APIKeyEnv
	if env == "" {
		env = fallback
	}

	key := getenv(env)
	// OpenAI-compatible servers at a custom base URL may not require a key.
	if key == "" && !(model.Provider == domain.ProviderOpenAI && model.BaseURL != "") {
		return "", domain.Annotate(domain.ErrMissingAPIKey, "env", env)
	}
	return key, nil
}
