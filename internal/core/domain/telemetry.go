package domain

// SpanTransform is the name of the span that covers one pipeline run.
const SpanTransform = "promptx.transform"

// SpanGenerate is the name of the child span around a generator call.
const SpanGenerate = "promptx.generate"

// Span attribute keys recorded by the pipeline.
const (
	AttrSource    = "promptx.source"
	AttrChecksum  = "promptx.checksum"
	AttrState     = "promptx.state"
	AttrCached    = "promptx.cached"
	AttrGenerator = "promptx.generator"
	AttrEvicted   = "promptx.evicted"
)
