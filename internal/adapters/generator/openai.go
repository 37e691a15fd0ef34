// Package generator provides language model adapters that turn prompt text into code.
package generator

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Generator = (*OpenAI)(nil)

// OpenAI generates code through an OpenAI-compatible chat completions API.
type OpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAI creates an OpenAI generator. An empty baseURL selects the public API.
func NewOpenAI(model domain.ModelConfig, apiKey string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if model.BaseURL != "" {
		cfg.BaseURL = model.BaseURL
	}

	return &OpenAI{
		client:    openai.NewClientWithConfig(cfg),
		model:     model.Name,
		maxTokens: maxTokensOrDefault(model.MaxTokens),
	}
}

// Name returns the provider and model identifier.
func (o *OpenAI) Name() string {
	return domain.ProviderOpenAI + ":" + o.model
}

// Generate sends one chat completion request and returns the first choice.
func (o *OpenAI) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: domain.SystemPromptOrDefault(req.SystemPrompt)},
			{Role: openai.ChatMessageRoleUser, Content: domain.UserPrompt(req.Name, req.Text)},
		},
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "chat completion request failed"), "model", o.model)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.Annotate(domain.ErrEmptyGeneration, "model", o.model)
	}

	return resp.Choices[0].Message.Content, nil
}

func maxTokensOrDefault(n int) int {
	if n > 0 {
		return n
	}
	return domain.DefaultMaxTokens
}
