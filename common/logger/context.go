package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and the worker attach the workflow identifiers once and every
// slog call below them picks the fields up.
type LogFields struct {
	SubmissionID *int64  // Submission the request or event is about
	QueryID      *int64  // Discussion thread
	JournalID    *int64  // Journal context for role checks
	UserID       *int64  // Authenticated caller
	RequestID    *string // X-Request-Id
	MessageID    *string // Redis stream message ID
	EventType    *string // Workflow event type (e.g., "query_created")
	Component    string  // Component name (e.g., "editorial.worker.processor")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.SubmissionID != nil {
		result.SubmissionID = next.SubmissionID
	}
	if next.QueryID != nil {
		result.QueryID = next.QueryID
	}
	if next.JournalID != nil {
		result.JournalID = next.JournalID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.EventType != nil {
		result.EventType = next.EventType
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{QueryID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
