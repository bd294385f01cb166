package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"

	"journalflow.app/editorial/core/config"
)

func Setup(cfg config.Config) {
	slog.SetDefault(slog.New(NewHandler(cfg, os.Stdout)))
}

// NewHandler picks the handler for the environment: OTLP bridge in production
// when an exporter is configured, JSON in production otherwise, text in
// development.
func NewHandler(cfg config.Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
	}

	switch {
	case cfg.IsProduction() && cfg.OTel.Enabled():
		return otelslog.NewHandler(
			cfg.OTel.ServiceName,
			otelslog.WithLoggerProvider(global.GetLoggerProvider()),
		)
	case cfg.IsProduction():
		return NewTraceHandler(slog.NewJSONHandler(w, opts))
	default:
		return NewTraceHandler(slog.NewTextHandler(w, opts))
	}
}

type TraceHandler struct {
	slog.Handler
}

func NewTraceHandler(h slog.Handler) *TraceHandler {
	return &TraceHandler{Handler: h}
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		sc := span.SpanContext()
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	fields := GetLogFields(ctx)
	if fields.SubmissionID != nil {
		r.AddAttrs(slog.Int64("submission_id", *fields.SubmissionID))
	}
	if fields.QueryID != nil {
		r.AddAttrs(slog.Int64("query_id", *fields.QueryID))
	}
	if fields.JournalID != nil {
		r.AddAttrs(slog.Int64("journal_id", *fields.JournalID))
	}
	if fields.UserID != nil {
		r.AddAttrs(slog.Int64("user_id", *fields.UserID))
	}
	if fields.RequestID != nil {
		r.AddAttrs(slog.String("request_id", *fields.RequestID))
	}
	if fields.MessageID != nil {
		r.AddAttrs(slog.String("message_id", *fields.MessageID))
	}
	if fields.EventType != nil {
		r.AddAttrs(slog.String("event_type", *fields.EventType))
	}
	if fields.Component != "" {
		r.AddAttrs(slog.String("component", fields.Component))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithGroup(name)}
}
