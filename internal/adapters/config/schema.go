package config

// File represents the structure of the promptx.yaml configuration file.
type File struct {
	Model        ModelDTO     `yaml:"model"`
	SystemPrompt string       `yaml:"systemPrompt"`
	Transform    TransformDTO `yaml:"transform"`
	ArtifactExt  string       `yaml:"artifactExt"`
	TypeScript   *bool        `yaml:"typescript"`
	Checksum     string       `yaml:"checksum"`
	Concurrency  int          `yaml:"concurrency"`
	Watch        WatchDTO     `yaml:"watch"`
}

// ModelDTO describes the language model used for generation.
type ModelDTO struct {
	Provider  string   `yaml:"provider"`
	Name      string   `yaml:"name"`
	BaseURL   string   `yaml:"baseURL"`
	APIKeyEnv string   `yaml:"apiKeyEnv"`
	MaxTokens int      `yaml:"maxTokens"`
	Command   []string `yaml:"command"`
}

// TransformDTO holds the text wrapped around every prompt before generation.
type TransformDTO struct {
	Prepend string `yaml:"prepend"`
	Append  string `yaml:"append"`
}

// WatchDTO configures the watch command.
type WatchDTO struct {
	Debounce string `yaml:"debounce"`
}
