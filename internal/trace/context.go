package trace

import "context"

type tracerKey struct{}

type spanKey struct{}

// FromContext returns the context's Tracer, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t (nil means Nop) to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// SpanContext is what nested spans inherit: the parent span and the lane.
type SpanContext struct {
	SpanID uint64
	Lane   uint64
}

// CurrentSpan returns the span context carried by ctx (zero if none).
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	sc, _ := ctx.Value(spanKey{}).(SpanContext)
	return sc
}

// WithSpanContext attaches sc to ctx.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, spanKey{}, sc)
}

// WithLane returns ctx whose spans and points are recorded on lane.
// Directory runs give each file its own lane.
func WithLane(ctx context.Context, lane uint64) context.Context {
	sc := CurrentSpan(ctx)
	sc.Lane = lane
	return WithSpanContext(ctx, sc)
}

// StartSpan begins a span with the context's tracer, parented to the
// context's current span, and returns a context carrying the new span.
// A suppressed span leaves the parent in place for nested spans.
func StartSpan(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	sc := CurrentSpan(ctx)
	sp := begin(FromContext(ctx), scope, name, sc.SpanID, sc.Lane)
	if sp.ID() == 0 {
		return ctx, sp
	}
	return WithSpanContext(ctx, SpanContext{SpanID: sp.ID(), Lane: sc.Lane}), sp
}
