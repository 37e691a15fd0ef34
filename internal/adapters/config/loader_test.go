package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/promptx/internal/adapters/config"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_LoadFile_Full(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	path := createFile(t, dir, domain.ConfigFileName, `
model:
  provider: anthropic
  name: claude-3-5-sonnet-latest
  apiKeyEnv: MY_KEY
  maxTokens: 4000
systemPrompt: You write Vue components.
transform:
  prepend: Use Tailwind.
  append: No comments.
artifactExt: jsx
checksum: xxhash
concurrency: 3
watch:
  debounce: 250ms
`)

	cfg, err := loader.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, domain.ModelConfig{
		Provider:  domain.ProviderAnthropic,
		Name:      "claude-3-5-sonnet-latest",
		APIKeyEnv: "MY_KEY",
		MaxTokens: 4000,
	}, cfg.Model)
	assert.Equal(t, "You write Vue components.", cfg.SystemPrompt)
	assert.Equal(t, "Use Tailwind.\n\nbody\n\nNo comments.", cfg.Transform()("body"))
	assert.Equal(t, "jsx", cfg.ArtifactExt)
	assert.True(t, cfg.TypeScript)
	assert.Equal(t, domain.ChecksumXXHash, cfg.Checksum)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
}

func TestLoader_LoadFile_Defaults(t *testing.T) {
	loader, _ := newLoader(t)
	path := createFile(t, t.TempDir(), domain.ConfigFileName, `
model:
  provider: openai
  name: gpt-4o-mini
`)

	cfg, err := loader.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultMaxTokens, cfg.Model.MaxTokens)
	assert.Equal(t, domain.DefaultArtifactExt, cfg.ArtifactExt)
	assert.Equal(t, domain.ChecksumMD5, cfg.Checksum)
	assert.Equal(t, domain.DefaultDebounce, cfg.Debounce)
	assert.Empty(t, cfg.SystemPrompt)
	assert.Equal(t, "body", cfg.Transform()("body"))
}

func TestLoader_LoadFile_CommandImpliesProvider(t *testing.T) {
	loader, _ := newLoader(t)
	path := createFile(t, t.TempDir(), domain.ConfigFileName, `
model:
  command: ["ollama", "run", "codellama"]
`)

	cfg, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderCommand, cfg.Model.Provider)
	assert.True(t, cfg.Model.Configured())
}

func TestLoader_LoadFile_TypeScriptFalseWarns(t *testing.T) {
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	path := createFile(t, t.TempDir(), domain.ConfigFileName, "typescript: false\n")

	cfg, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.TypeScript)
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid yaml", content: "model: [unterminated", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown checksum", content: "checksum: sha1", wantErr: domain.ErrUnknownChecksum},
		{name: "invalid artifact ext", content: "artifactExt: .tsx", wantErr: domain.ErrInvalidArtifactExt},
		{name: "invalid debounce", content: "watch:\n  debounce: soon", wantErr: domain.ErrInvalidDebounce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			path := createFile(t, t.TempDir(), domain.ConfigFileName, tt.content)

			_, err := loader.LoadFile(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.LoadFile(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
