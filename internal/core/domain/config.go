package domain

import (
	"strings"
	"time"
)

const (
	// ProviderAnthropic selects the Anthropic messages API.
	ProviderAnthropic = "anthropic"
	// ProviderOpenAI selects an OpenAI-compatible chat completions API.
	ProviderOpenAI = "openai"
	// ProviderCommand runs a local program with the prompt on stdin.
	ProviderCommand = "command"

	// ChecksumMD5 is the default checksum algorithm.
	ChecksumMD5 = "md5"
	// ChecksumXXHash selects the 64-bit xxhash checksum.
	ChecksumXXHash = "xxhash"

	// DefaultDebounce is the default window for coalescing watch events.
	DefaultDebounce = 100 * time.Millisecond
)

// ModelConfig describes the generation-capable model handle.
type ModelConfig struct {
	Provider  string
	Name      string
	BaseURL   string
	APIKeyEnv string
	MaxTokens int
	Command   []string
}

// Configured reports whether a model handle was supplied.
func (m ModelConfig) Configured() bool {
	if m.Provider == ProviderCommand {
		return len(m.Command) > 0
	}
	return m.Provider != "" && m.Name != ""
}

// PromptTransform rewrites source text before it is handed to the generator.
type PromptTransform func(text string) string

// Config is the resolved configuration consumed at the boundary.
type Config struct {
	// Root is the directory containing the configuration file, or the working
	// directory when none was found.
	Root         string
	Model        ModelConfig
	SystemPrompt string
	Prepend      string
	Append       string
	ArtifactExt  string
	// TypeScript is accepted for compatibility and currently has no effect.
	TypeScript  bool
	Checksum    string
	Concurrency int
	Debounce    time.Duration
}

// DefaultConfig returns a Config with every optional field defaulted.
func DefaultConfig() Config {
	return Config{
		Model:       ModelConfig{MaxTokens: DefaultMaxTokens},
		ArtifactExt: DefaultArtifactExt,
		TypeScript:  true,
		Checksum:    ChecksumMD5,
		Debounce:    DefaultDebounce,
	}
}

// Transform returns the pre-transform described by the configuration.
// It is the identity when neither Prepend nor Append is set.
func (c Config) Transform() PromptTransform {
	if c.Prepend == "" && c.Append == "" {
		return func(text string) string { return text }
	}
	prepend, appendix := c.Prepend, c.Append
	return func(text string) string {
		var b strings.Builder
		if prepend != "" {
			b.WriteString(prepend)
			b.WriteString("\n\n")
		}
		b.WriteString(text)
		if appendix != "" {
			b.WriteString("\n\n")
			b.WriteString(appendix)
		}
		return b.String()
	}
}
