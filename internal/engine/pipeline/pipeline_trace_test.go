package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/promptx/internal/adapters/telemetry"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := telemetry.Setup(sr)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func spanNamed(t *testing.T, spans []sdktrace.ReadOnlySpan, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, s := range spans {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("span %q not recorded", name)
	return nil
}

func eventNames(s sdktrace.ReadOnlySpan) []string {
	names := make([]string, 0, len(s.Events()))
	for _, e := range s.Events() {
		if e.Name == "exception" {
			continue
		}
		names = append(names, e.Name)
	}
	return names
}

func attrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestTransform_TracesStateTransitions(t *testing.T) {
	sr := setupRecorder(t)
	f := newFixture(t)
	src := f.writeSource(t, "Counter.promptx", "X")
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("G1", nil)

	p := f.pipeline(pipeline.WithTracer(telemetry.NewOTelTracer("test")))
	ctx := context.Background()

	_, err := p.Transform(ctx, src)
	require.NoError(t, err)
	_, err = p.Transform(ctx, src)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 3)

	gen := spanNamed(t, spans, domain.SpanGenerate)
	assert.Equal(t, "fake", attrs(gen)[domain.AttrGenerator].AsString())

	miss, hit := spans[1], spans[2]
	assert.Equal(t, domain.SpanTransform, miss.Name())
	assert.Equal(t, miss.SpanContext().SpanID(), gen.Parent().SpanID())
	assert.Equal(t, []string{
		"checksum_known", "cache_miss", "generating", "generated", "write_cache", "evict", "done",
	}, eventNames(miss))
	assert.Equal(t, src, attrs(miss)[domain.AttrSource].AsString())
	assert.Equal(t, md5Of("X"), attrs(miss)[domain.AttrChecksum].AsString())
	assert.Equal(t, "done", attrs(miss)[domain.AttrState].AsString())
	assert.False(t, attrs(miss)[domain.AttrCached].AsBool())

	assert.Equal(t, []string{"checksum_known", "cache_hit", "done"}, eventNames(hit))
	assert.True(t, attrs(hit)[domain.AttrCached].AsBool())
}

func TestTransform_TracesFailure(t *testing.T) {
	sr := setupRecorder(t)
	f := newFixture(t)
	src := f.writeSource(t, "Counter.promptx", "X")
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", zerr.New("quota exceeded"))

	p := f.pipeline(pipeline.WithTracer(telemetry.NewOTelTracer("test")))
	_, err := p.Transform(context.Background(), src)
	require.Error(t, err)

	transform := spanNamed(t, sr.Ended(), domain.SpanTransform)
	assert.Equal(t, codes.Error, transform.Status().Code)
	assert.Equal(t, []string{
		"checksum_known", "cache_miss", "generating", "generation_failed", "failed",
	}, eventNames(transform))
	assert.Equal(t, "failed", attrs(transform)[domain.AttrState].AsString())

	gen := spanNamed(t, sr.Ended(), domain.SpanGenerate)
	assert.Equal(t, codes.Error, gen.Status().Code)
}
