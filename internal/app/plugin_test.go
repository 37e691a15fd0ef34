package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/promptx/internal/plugin"
)

func TestServe(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "Counter.promptx", "a counter")
	f.cfg.Concurrency = 2

	in := strings.NewReader(`{"id":1,"op":"transform","path":"` + path + `"}` + "\n")
	var out bytes.Buffer
	require.NoError(t, f.app().Serve(context.Background(), in, &out))

	var resp struct {
		ID     int64                  `json:"id"`
		Result plugin.TransformResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "// Counter\na counter", resp.Result.Code)
}

func TestServe_ModelRequired(t *testing.T) {
	f := newFixture(t)
	a := f.app().WithGeneratorFactory(func(domain.ModelConfig) (ports.Generator, error) {
		return nil, domain.ErrModelRequired
	})

	err := a.Serve(context.Background(), strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrModelRequired)
}

func TestResolve(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, filepath.Join("components", "Counter.promptx"), "a counter")
	importer := filepath.Join(f.dir, "main.tsx")

	resolved, err := f.app().Resolve("./components/Counter.promptx", importer)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	_, err = f.app().Resolve("./components/Missing.promptx", importer)
	assert.ErrorIs(t, err, domain.ErrResolution)
}

func TestHostConfig(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer
	require.NoError(t, f.app().HostConfig(&out, []string{".ts", ".tsx"}))

	var cfg plugin.HostConfig
	require.NoError(t, json.Unmarshal(out.Bytes(), &cfg))
	assert.Equal(t, []string{".promptx", ".ts", ".tsx"}, cfg.Resolve.Extensions)
}
