package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/promptx/internal/core/domain"
)

func TestComponentName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "Counter.promptx", want: "Counter"},
		{path: "/src/user-card.promptx", want: "UserCard"},
		{path: "contact-form-v2.promptx", want: "ContactFormV2"},
		{path: "double--dash.promptx", want: "DoubleDash"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ComponentName(tt.path))
		})
	}
}

func TestSourceUnit(t *testing.T) {
	src := domain.SourceUnit{Path: "/src/user-card.promptx", Content: []byte("a card")}
	assert.Equal(t, "user-card.promptx", src.Base())
	assert.Equal(t, "UserCard", src.Name())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "cache_hit", domain.StateCacheHit.String())
	assert.Equal(t, "generation_failed", domain.StateGenerationFailed.String())
	assert.Equal(t, "unknown", domain.State(200).String())
	assert.True(t, domain.StateDone.Terminal())
	assert.True(t, domain.StateFailed.Terminal())
	assert.False(t, domain.StateEvict.Terminal())
}

func TestConfig_Transform(t *testing.T) {
	tests := []struct {
		name    string
		prepend string
		appendS string
		want    string
	}{
		{name: "identity", want: "body"},
		{name: "prepend", prepend: "Use Tailwind.", want: "Use Tailwind.\n\nbody"},
		{name: "append", appendS: "No comments.", want: "body\n\nNo comments."},
		{name: "both", prepend: "P", appendS: "A", want: "P\n\nbody\n\nA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			cfg.Prepend = tt.prepend
			cfg.Append = tt.appendS
			assert.Equal(t, tt.want, cfg.Transform()("body"))
		})
	}
}

func TestModelConfig_Configured(t *testing.T) {
	assert.False(t, domain.ModelConfig{}.Configured())
	assert.False(t, domain.ModelConfig{Provider: domain.ProviderOpenAI}.Configured())
	assert.True(t, domain.ModelConfig{Provider: domain.ProviderOpenAI, Name: "gpt-4o-mini"}.Configured())
	assert.False(t, domain.ModelConfig{Provider: domain.ProviderCommand}.Configured())
	assert.True(t, domain.ModelConfig{Provider: domain.ProviderCommand, Command: []string{"cat"}}.Configured())
}

func TestPrompts(t *testing.T) {
	assert.Equal(t, domain.DefaultSystemPrompt, domain.SystemPromptOrDefault(""))
	assert.Equal(t, "custom", domain.SystemPromptOrDefault("custom"))
	assert.Contains(t, domain.UserPrompt("Counter", "a button"), "named Counter")
	assert.Contains(t, domain.UserPrompt("Counter", "a button"), "\n\na button\n\n")
}
