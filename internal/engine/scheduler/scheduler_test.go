package scheduler_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports/mocks"
	"go.trai.ch/promptx/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestScheduler_Run_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	transformer := mocks.NewMockTransformer(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)

	transformer.EXPECT().Transform(gomock.Any(), "a.promptx").
		Return(domain.Result{Code: "A", State: domain.StateDone, Cached: true}, nil)
	transformer.EXPECT().Transform(gomock.Any(), "b.promptx").
		Return(domain.Result{Code: "B", State: domain.StateDone}, nil)
	renderer.EXPECT().OnSummary(2, 1, 1, 0)

	s := scheduler.NewScheduler(transformer, renderer)
	summary, err := s.Run(context.Background(), []string{"a.promptx", "b.promptx"}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total())
	assert.Equal(t, 1, summary.Cached)
	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, "a.promptx", summary.Units[0].Path)
	assert.Equal(t, "B", summary.Units[1].Result.Code)
}

func TestScheduler_Run_FailureDoesNotStopBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	transformer := mocks.NewMockTransformer(ctrl)

	transformer.EXPECT().Transform(gomock.Any(), "bad.promptx").
		Return(domain.Result{State: domain.StateFailed}, zerr.New("model unavailable"))
	transformer.EXPECT().Transform(gomock.Any(), "good.promptx").
		Return(domain.Result{State: domain.StateDone}, nil)

	s := scheduler.NewScheduler(transformer, nil)
	summary, err := s.Run(context.Background(), []string{"bad.promptx", "good.promptx"}, 1)
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorContains(t, err, "model unavailable")
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Generated)
	assert.Error(t, summary.Units[0].Err)
	assert.NoError(t, summary.Units[1].Err)
}

func TestScheduler_Run_RespectsParallelism(t *testing.T) {
	ctrl := gomock.NewController(t)
	transformer := mocks.NewMockTransformer(ctrl)

	var active, peak atomic.Int32
	var mu sync.Mutex
	transformer.EXPECT().Transform(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (domain.Result, error) {
			n := active.Add(1)
			mu.Lock()
			if n > peak.Load() {
				peak.Store(n)
			}
			mu.Unlock()
			time.Sleep(10 * time.Millisecond)
			active.Add(-1)
			return domain.Result{State: domain.StateDone}, nil
		}).Times(6)

	s := scheduler.NewScheduler(transformer, nil)
	_, err := s.Run(context.Background(), []string{"1", "2", "3", "4", "5", "6"}, 2)
	require.NoError(t, err)

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestScheduler_Run_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnSummary(0, 0, 0, 0)

	s := scheduler.NewScheduler(mocks.NewMockTransformer(ctrl), renderer)
	summary, err := s.Run(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total())
}
