package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/promptx/internal/adapters/generator"
	"go.trai.ch/promptx/internal/core/domain"
)

func TestNewWithEnv(t *testing.T) {
	env := map[string]string{
		"ANTHROPIC_API_KEY": "a-key",
		"CUSTOM_KEY":        "c-key",
	}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name     string
		model    domain.ModelConfig
		wantName string
		wantErr  error
	}{
		{
			name:    "missing model",
			model:   domain.ModelConfig{},
			wantErr: domain.ErrModelRequired,
		},
		{
			name:    "command without argv",
			model:   domain.ModelConfig{Provider: domain.ProviderCommand},
			wantErr: domain.ErrMissingCommand,
		},
		{
			name:     "anthropic with default key env",
			model:    domain.ModelConfig{Provider: domain.ProviderAnthropic, Name: "claude"},
			wantName: "anthropic:claude",
		},
		{
			name:    "openai without key",
			model:   domain.ModelConfig{Provider: domain.ProviderOpenAI, Name: "gpt-4o"},
			wantErr: domain.ErrMissingAPIKey,
		},
		{
			name:     "openai with custom key env",
			model:    domain.ModelConfig{Provider: domain.ProviderOpenAI, Name: "gpt-4o", APIKeyEnv: "CUSTOM_KEY"},
			wantName: "openai:gpt-4o",
		},
		{
			name:     "openai compatible server without key",
			model:    domain.ModelConfig{Provider: domain.ProviderOpenAI, Name: "llama3", BaseURL: "http://localhost:11434/v1"},
			wantName: "openai:llama3",
		},
		{
			name:     "command",
			model:    domain.ModelConfig{Provider: domain.ProviderCommand, Command: []string{"ollama", "run", "codellama"}},
			wantName: "command:ollama",
		},
		{
			name:    "unknown provider",
			model:   domain.ModelConfig{Provider: "bard", Name: "x"},
			wantErr: domain.ErrUnknownProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := generator.NewWithEnv(tt.model, getenv)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, gen.Name())
		})
	}
}
