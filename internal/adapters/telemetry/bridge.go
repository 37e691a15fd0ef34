package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports finished pipeline
// spans to a Renderer. Spans with any other name are ignored.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart does nothing. Pipeline attributes are only complete once the span ends.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil || s.Name() != domain.SpanTransform {
		return
	}
	if !s.SpanContext().IsValid() {
		return
	}

	report := ports.UnitReport{
		Duration: s.EndTime().Sub(s.StartTime()),
	}
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case domain.AttrSource:
			report.Unit = kv.Value.AsString()
		case domain.AttrState:
			report.State = kv.Value.AsString()
		case domain.AttrCached:
			if kv.Value.Type() == attribute.BOOL {
				report.Cached = kv.Value.AsBool()
			}
		}
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "transform failed"
		}
		report.Err = errors.New(desc)
	}

	b.renderer.OnUnitComplete(report)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
