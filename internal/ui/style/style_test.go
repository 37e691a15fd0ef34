package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/promptx/internal/ui/style"
)

func TestMarker_String(t *testing.T) {
	assert.Contains(t, style.Generated.String(), style.Check)
	assert.Contains(t, style.Failed.String(), style.Cross)
	assert.Equal(t, style.Green, style.Generated.Color)
	assert.Equal(t, style.Red, style.Failed.Color)
}
