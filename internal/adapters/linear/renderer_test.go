package linear_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/promptx/internal/adapters/linear"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
)

func TestRenderer_Generated(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	r := linear.NewRenderer(&out)

	r.OnUnitComplete(ports.UnitReport{
		Unit:     "src/Counter.promptx",
		State:    "done",
		Duration: 1234567 * time.Microsecond,
	})

	assert.Equal(t, "[src/Counter.promptx] ✓ Generated in 1.235s\n", out.String())
}

func TestRenderer_Cached(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	r := linear.NewRenderer(&out)

	r.OnUnitComplete(ports.UnitReport{Unit: "Counter.promptx", State: "done", Cached: true})

	assert.Equal(t, "[Counter.promptx] ✓ Cached\n", out.String())
}

func TestRenderer_Failed(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	r := linear.NewRenderer(&out)

	r.OnUnitComplete(ports.UnitReport{
		Unit:     "Counter.promptx",
		State:    "failed",
		Duration: 50 * time.Millisecond,
		Err:      zerr.New("code generation failed"),
	})

	assert.Equal(t, "[Counter.promptx] ✗ Failed after 50ms: code generation failed\n", out.String())
}

func TestRenderer_Summary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	r := linear.NewRenderer(&out)

	r.OnSummary(3, 1, 1, 1)

	assert.Equal(t, "3 unit(s): 1 cached, 1 generated, 1 failed\n", out.String())
}

func TestRenderer_ColorsWithoutNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var out bytes.Buffer
	r := linear.NewRenderer(&out)

	r.OnUnitComplete(ports.UnitReport{Unit: "Counter.promptx"})

	assert.Contains(t, out.String(), "\x1b[")
}

func TestRenderer_ConcurrentReports(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	r := linear.NewRenderer(&out)

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			r.OnUnitComplete(ports.UnitReport{Unit: "Counter.promptx", Cached: true})
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, "[Counter.promptx] ✓ Cached", line)
	}
}
