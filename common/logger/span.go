package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "editorial"

// SpanContext wraps an OTel span for managed lifecycle.
type SpanContext struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan creates a new span as a child of the current trace context.
// Returns a SpanContext that must be ended with End().
//
// Example:
//
//	sc := logger.StartSpan(ctx, "workflow.assign_participant")
//	defer sc.End()
//	ctx = sc.Context()
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) *SpanContext {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, opts...)
	return &SpanContext{ctx: ctx, span: span}
}

// StartSpanFromTraceID creates a span linked to a trace started in another
// process. The server writes the trace id into each stream message and the
// worker continues it here. An empty or malformed id starts a fresh trace.
func StartSpanFromTraceID(ctx context.Context, traceIDStr string, name string, opts ...trace.SpanStartOption) *SpanContext {
	tracer := otel.Tracer(tracerName)

	traceID, err := trace.TraceIDFromHex(traceIDStr)
	if traceIDStr == "" || err != nil {
		ctx, span := tracer.Start(ctx, name, opts...)
		return &SpanContext{ctx: ctx, span: span}
	}

	remote := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})

	opts = append(opts, trace.WithLinks(trace.Link{SpanContext: remote}))
	ctx = trace.ContextWithRemoteSpanContext(ctx, remote)
	ctx, span := tracer.Start(ctx, name, opts...)

	return &SpanContext{ctx: ctx, span: span}
}

// TraceIDFromContext returns the hex trace id of the active span, or "" when
// tracing is off.
func TraceIDFromContext(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

func (sc *SpanContext) Context() context.Context {
	return sc.ctx
}

// End completes the span. Safe to call multiple times.
func (sc *SpanContext) End() {
	if sc.span != nil {
		sc.span.End()
	}
}

func (sc *SpanContext) RecordError(err error) {
	if sc.span != nil && err != nil {
		sc.span.RecordError(err)
	}
}

func (sc *SpanContext) Span() trace.Span {
	return sc.span
}
