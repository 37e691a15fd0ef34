package generator

import (
	"context"
	"strings"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
	"resty.dev/v3"
)

const (
	// DefaultAnthropicBaseURL is the public Anthropic API endpoint.
	DefaultAnthropicBaseURL = "https://api.anthropic.com"

	anthropicVersion = "2023-06-01"
	messagesPath     = "/v1/messages"
)

var _ ports.Generator = (*Anthropic)(nil)

// Anthropic generates code through the Anthropic messages API.
type Anthropic struct {
	client    *resty.Client
	model     string
	maxTokens int
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content    []anthropicContentBlock `json:"content"`
	StopReason string                  `json:"stop_reason"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropic creates an Anthropic generator. An empty baseURL selects the public API.
func NewAnthropic(model domain.ModelConfig, apiKey string) *Anthropic {
	baseURL := model.BaseURL
	if baseURL == "" {
		baseURL = DefaultAnthropicBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("Content-Type", "application/json")

	return &Anthropic{
		client:    client,
		model:     model.Name,
		maxTokens: maxTokensOrDefault(model.MaxTokens),
	}
}

// Name returns the provider and model identifier.
func (a *Anthropic) Name() string {
	return domain.ProviderAnthropic + ":" + a.model
}

// Generate sends one messages request and returns the concatenated text blocks.
func (a *Anthropic) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	var result anthropicResponse
	var apiErr anthropicError

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(anthropicRequest{
			Model:     a.model,
			MaxTokens: a.maxTokens,
			System:    domain.SystemPromptOrDefault(req.SystemPrompt),
			Messages: []anthropicMessage{
				{Role: "user", Content: domain.UserPrompt(req.Name, req.Text)},
			},
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post(messagesPath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "messages request failed"), "model", a.model)
	}

	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		err := zerr.With(zerr.New(msg), "status", resp.StatusCode())
		if apiErr.Error.Type != "" {
			err = zerr.With(err, "type", apiErr.Error.Type)
		}
		return "", zerr.With(zerr.Wrap(err, "messages request rejected"), "model", a.model)
	}

	var text strings.Builder
	for _, block := range result.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if text.Len() == 0 {
		return "", domain.Annotate(domain.ErrEmptyGeneration, "model", a.model)
	}

	return text.String(), nil
}
