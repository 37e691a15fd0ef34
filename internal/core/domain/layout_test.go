package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/promptx/internal/core/domain"
)

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name       string
		sourcePath string
		checksum   string
		ext        string
		want       string
	}{
		{
			name:       "simple source",
			sourcePath: filepath.Join("src", "Counter.promptx"),
			checksum:   "31fd892d997bbfea0ea337e6d8caff8c",
			ext:        "tsx",
			want:       filepath.Join("src", ".cache", "31fd892d997bbfea0ea337e6d8caff8c-Counter.promptx.tsx"),
		},
		{
			name:       "hyphenated basename",
			sourcePath: filepath.Join("/abs", "components", "user-card.promptx"),
			checksum:   "abc123",
			ext:        "jsx",
			want:       filepath.Join("/abs", "components", ".cache", "abc123-user-card.promptx.jsx"),
		},
		{
			name:       "bare file name",
			sourcePath: "Contact.promptx",
			checksum:   "be582421a0644463c6ffe12fd9ebe97e",
			ext:        "tsx",
			want:       filepath.Join(".cache", "be582421a0644463c6ffe12fd9ebe97e-Contact.promptx.tsx"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ArtifactPath(tt.sourcePath, tt.checksum, tt.ext))
		})
	}
}

func TestArtifactPath_ScopedPerSourceDirectory(t *testing.T) {
	a := domain.ArtifactPath(filepath.Join("a", "Counter.promptx"), "c1", "tsx")
	b := domain.ArtifactPath(filepath.Join("b", "Counter.promptx"), "c1", "tsx")
	assert.NotEqual(t, a, b)
	assert.Equal(t, filepath.Join("a", ".cache"), filepath.Dir(a))
	assert.Equal(t, filepath.Join("b", ".cache"), filepath.Dir(b))
}

func TestParseArtifactName(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantChecksum string
		wantBase     string
		wantExt      string
		wantOK       bool
	}{
		{
			name:         "standard artifact",
			input:        "31fd892d997bbfea0ea337e6d8caff8c-Counter.promptx.tsx",
			wantChecksum: "31fd892d997bbfea0ea337e6d8caff8c",
			wantBase:     "Counter.promptx",
			wantExt:      "tsx",
			wantOK:       true,
		},
		{
			name:         "hyphen in basename",
			input:        "00ff-user-card.promptx.jsx",
			wantChecksum: "00ff",
			wantBase:     "user-card.promptx",
			wantExt:      "jsx",
			wantOK:       true,
		},
		{
			name:         "empty source stem",
			input:        "7fc56270e7a70fa81a5935b72eacbe29-.promptx.tsx",
			wantChecksum: "7fc56270e7a70fa81a5935b72eacbe29",
			wantBase:     ".promptx",
			wantExt:      "tsx",
			wantOK:       true,
		},
		{
			name:   "temp file",
			input:  ".tmp-123456",
			wantOK: false,
		},
		{
			name:   "non hex checksum",
			input:  "zz-Counter.promptx.tsx",
			wantOK: false,
		},
		{
			name:   "missing extension",
			input:  "abc-Counter.promptx.",
			wantOK: false,
		},
		{
			name:   "not a promptx artifact",
			input:  "abc-readme.md",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checksum, base, ext, ok := domain.ParseArtifactName(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantChecksum, checksum)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestBelongsTo(t *testing.T) {
	assert.True(t, domain.BelongsTo("c1-Counter.promptx.tsx", "Counter.promptx"))
	assert.False(t, domain.BelongsTo("c1-MyCounter.promptx.tsx", "Counter.promptx"))
	assert.False(t, domain.BelongsTo("c1-Counter.promptx.tsx", "Contact.promptx"))
	assert.False(t, domain.BelongsTo(".tmp-Counter.promptx", "Counter.promptx"))
	assert.True(t, domain.BelongsTo("c1-.promptx.tsx", ".promptx"))
	assert.False(t, domain.BelongsTo("c1-.promptx.tsx", "Counter.promptx"))
}

func TestValidArtifactExt(t *testing.T) {
	assert.True(t, domain.ValidArtifactExt("tsx"))
	assert.False(t, domain.ValidArtifactExt(""))
	assert.False(t, domain.ValidArtifactExt(".tsx"))
	assert.False(t, domain.ValidArtifactExt("a/b"))
}

func TestIsPromptFile(t *testing.T) {
	assert.True(t, domain.IsPromptFile("/src/Counter.promptx"))
	assert.False(t, domain.IsPromptFile("/src/Counter.tsx"))
	assert.False(t, domain.IsPromptFile("/src/Counter.promptx.tsx"))
}
