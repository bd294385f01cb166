package queue

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"journalflow.app/editorial/internal/model"
)

// Message is a workflow event read back from the stream.
type Message struct {
	ID      string
	Event   model.WorkflowEvent
	Attempt int
	Raw     redis.XMessage
}

func eventValues(ev model.WorkflowEvent, attempt int) map[string]any {
	if attempt <= 0 {
		attempt = 1
	}

	values := map[string]any{
		"event_id":      ev.ID,
		"event_type":    string(ev.Type),
		"submission_id": ev.SubmissionID,
		"actor_id":      ev.ActorID,
		"attempt":       attempt,
	}

	if ev.ActorName != "" {
		values["actor_name"] = ev.ActorName
	}
	if ev.UserName != "" {
		values["user_name"] = ev.UserName
	}
	if ev.QueryID != nil {
		values["query_id"] = *ev.QueryID
	}
	if ev.NoteID != nil {
		values["note_id"] = *ev.NoteID
	}
	if ev.UserID != nil {
		values["user_id"] = *ev.UserID
	}
	if ev.Stage != "" {
		values["stage"] = string(ev.Stage)
	}
	if ev.Role != "" {
		values["role"] = string(ev.Role)
	}
	if len(ev.Recipients) > 0 {
		values["recipients"] = joinIDs(ev.Recipients)
	}
	if !ev.OccurredAt.IsZero() {
		values["occurred_at"] = ev.OccurredAt.UTC().Format(time.RFC3339Nano)
	}
	if ev.TraceID != "" {
		values["trace_id"] = ev.TraceID
	}

	return values
}

func ParseMessage(msg redis.XMessage) (Message, error) {
	eventID, err := parseInt64(msg.Values, "event_id")
	if err != nil {
		return Message{}, err
	}
	submissionID, err := parseInt64(msg.Values, "submission_id")
	if err != nil {
		return Message{}, err
	}
	actorID, err := parseInt64(msg.Values, "actor_id")
	if err != nil {
		return Message{}, err
	}
	eventType, err := parseString(msg.Values, "event_type")
	if err != nil {
		return Message{}, err
	}
	if !model.EventType(eventType).Valid() {
		return Message{}, fmt.Errorf("unknown event_type %q", eventType)
	}

	queryID, err := parseOptionalInt64(msg.Values, "query_id")
	if err != nil {
		return Message{}, err
	}
	noteID, err := parseOptionalInt64(msg.Values, "note_id")
	if err != nil {
		return Message{}, err
	}
	userID, err := parseOptionalInt64(msg.Values, "user_id")
	if err != nil {
		return Message{}, err
	}
	recipients, err := parseIDList(msg.Values, "recipients")
	if err != nil {
		return Message{}, err
	}

	var occurredAt time.Time
	if raw := parseOptionalString(msg.Values, "occurred_at"); raw != "" {
		occurredAt, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return Message{}, fmt.Errorf("parsing occurred_at: %w", err)
		}
	}

	attempt, err := parseOptionalInt(msg.Values, "attempt")
	if err != nil {
		return Message{}, err
	}
	if attempt == 0 {
		attempt = 1
	}

	return Message{
		ID: msg.ID,
		Event: model.WorkflowEvent{
			ID:           eventID,
			Type:         model.EventType(eventType),
			SubmissionID: submissionID,
			ActorID:      actorID,
			ActorName:    parseOptionalString(msg.Values, "actor_name"),
			UserName:     parseOptionalString(msg.Values, "user_name"),
			QueryID:      queryID,
			NoteID:       noteID,
			UserID:       userID,
			Stage:        model.Stage(parseOptionalString(msg.Values, "stage")),
			Role:         model.Role(parseOptionalString(msg.Values, "role")),
			Recipients:   recipients,
			OccurredAt:   occurredAt,
			TraceID:      parseOptionalString(msg.Values, "trace_id"),
		},
		Attempt: attempt,
		Raw:     msg,
	}, nil
}

func parseInt64(values map[string]any, key string) (int64, error) {
	raw, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	num, err := strconv.ParseInt(fmt.Sprint(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return num, nil
}

func parseString(values map[string]any, key string) (string, error) {
	raw, ok := values[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	return fmt.Sprint(raw), nil
}

func parseOptionalInt64(values map[string]any, key string) (*int64, error) {
	raw, ok := values[key]
	if !ok {
		return nil, nil
	}
	num, err := strconv.ParseInt(fmt.Sprint(raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	return &num, nil
}

func parseOptionalInt(values map[string]any, key string) (int, error) {
	raw, ok := values[key]
	if !ok {
		return 0, nil
	}
	num, err := strconv.Atoi(fmt.Sprint(raw))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return num, nil
}

func parseOptionalString(values map[string]any, key string) string {
	raw, ok := values[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(raw)
}

func parseIDList(values map[string]any, key string) ([]int64, error) {
	raw := parseOptionalString(values, key)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		num, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		ids = append(ids, num)
	}
	return ids, nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
