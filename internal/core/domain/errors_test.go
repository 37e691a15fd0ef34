package domain_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestAnnotate(t *testing.T) {
	err := domain.Annotate(domain.ErrUnknownChecksum, "algorithm", "sha1")

	assert.ErrorIs(t, err, domain.ErrUnknownChecksum)
	assert.Equal(t, domain.ErrUnknownChecksum.Error(), err.Error())

	chained := zerr.With(err, "source", "promptx.yaml")
	assert.ErrorIs(t, chained, domain.ErrUnknownChecksum)
}

func TestClassify(t *testing.T) {
	err := domain.Classify(domain.ErrCacheWriteFailed, fs.ErrPermission)

	assert.ErrorIs(t, err, domain.ErrCacheWriteFailed)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "failed to write cached artifact: permission denied", err.Error())

	annotated := zerr.With(err, "path", ".cache/c1-Counter.promptx.tsx")
	assert.ErrorIs(t, annotated, domain.ErrCacheWriteFailed)
	assert.Equal(t, err.Error(), annotated.Error())

	assert.Same(t, domain.ErrCacheWriteFailed, domain.Classify(domain.ErrCacheWriteFailed, nil))
	assert.False(t, errors.Is(err, domain.ErrCacheReadFailed))
}
