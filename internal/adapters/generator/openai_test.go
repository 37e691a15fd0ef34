package generator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/promptx/internal/adapters/generator"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
)

func TestOpenAI_Generate(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "const x = 1;"},
			}},
		})
	}))
	defer srv.Close()

	gen := generator.NewOpenAI(domain.ModelConfig{
		Name:      "gpt-4o-mini",
		BaseURL:   srv.URL,
		MaxTokens: 123,
	}, "sk-test")

	out, err := gen.Generate(t.Context(), ports.GenerateRequest{Text: "a form", Name: "ContactForm", SystemPrompt: "custom"})
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;", out)
	assert.Equal(t, "openai:gpt-4o-mini", gen.Name())

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 123, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "custom", got.Messages[0].Content)
	assert.Equal(t, domain.UserPrompt("ContactForm", "a form"), got.Messages[1].Content)
}

func TestOpenAI_Generate_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	gen := generator.NewOpenAI(domain.ModelConfig{Name: "m", BaseURL: srv.URL}, "k")

	_, err := gen.Generate(t.Context(), ports.GenerateRequest{Text: "x", Name: "X"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyGeneration)
}

func TestOpenAI_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	gen := generator.NewOpenAI(domain.ModelConfig{Name: "m", BaseURL: srv.URL}, "k")

	_, err := gen.Generate(t.Context(), ports.GenerateRequest{Text: "x", Name: "X"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "chat completion request failed")
}
