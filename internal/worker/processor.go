package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"journalflow.app/editorial/common/id"
	"journalflow.app/editorial/internal/model"
)

// Processor records workflow events in the submission activity log and
// fans them out as notifications.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

type activityMetadata struct {
	Stage   model.Stage `json:"stage,omitempty"`
	Role    model.Role  `json:"role,omitempty"`
	UserID  *int64      `json:"user_id,string,omitempty"`
	QueryID *int64      `json:"query_id,string,omitempty"`
	NoteID  *int64      `json:"note_id,string,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func (p *Processor) Process(ctx context.Context, ev model.WorkflowEvent, stores StoreProvider) error {
	metadata, err := json.Marshal(activityMetadata{
		Stage:   ev.Stage,
		Role:    ev.Role,
		UserID:  ev.UserID,
		QueryID: ev.QueryID,
		NoteID:  ev.NoteID,
		TraceID: ev.TraceID,
	})
	if err != nil {
		return fmt.Errorf("encoding activity metadata: %w", err)
	}

	entry := &model.ActivityLog{
		ID:           ev.ID,
		SubmissionID: ev.SubmissionID,
		ActorID:      ev.ActorID,
		Category:     ev.Type.Category(),
		EventType:    ev.Type,
		Message:      activityMessage(ev),
		Metadata:     metadata,
	}

	created, err := stores.Activity().Create(ctx, entry)
	if err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	if !created {
		slog.InfoContext(ctx, "event already recorded, skipping", "event_id", ev.ID)
		return nil
	}

	kind := notificationKind(ev.Type)
	sent := 0
	for _, userID := range recipients(ev) {
		n := &model.Notification{
			ID:           id.New(),
			EventID:      ev.ID,
			UserID:       userID,
			SubmissionID: ev.SubmissionID,
			QueryID:      ev.QueryID,
			Kind:         kind,
			Message:      entry.Message,
		}
		ok, err := stores.Notifications().Create(ctx, n)
		if err != nil {
			return fmt.Errorf("notifying user %d: %w", userID, err)
		}
		if ok {
			sent++
		}
	}

	slog.InfoContext(ctx, "event recorded",
		"event_id", ev.ID,
		"activity_category", entry.Category,
		"notifications", sent)

	return nil
}

// recipients drops the actor and duplicates.
func recipients(ev model.WorkflowEvent) []int64 {
	seen := map[int64]struct{}{ev.ActorID: {}}
	var out []int64
	for _, userID := range ev.Recipients {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		out = append(out, userID)
	}
	return out
}

func notificationKind(t model.EventType) model.NotificationKind {
	switch t {
	case model.EventTypeParticipantAssigned:
		return model.NotificationKindAssigned
	case model.EventTypeParticipantRemoved:
		return model.NotificationKindUnassigned
	case model.EventTypeParticipantUpdated:
		return model.NotificationKindPermissions
	case model.EventTypeQueryCreated:
		return model.NotificationKindQueryOpened
	case model.EventTypeQueryNoteAdded:
		return model.NotificationKindQueryReplied
	default:
		return model.NotificationKindQueryClosed
	}
}

func activityMessage(ev model.WorkflowEvent) string {
	actor := displayName(ev.ActorName, &ev.ActorID)
	user := displayName(ev.UserName, ev.UserID)

	switch ev.Type {
	case model.EventTypeParticipantAssigned:
		return fmt.Sprintf("%s assigned %s as %s at %s", actor, user, ev.Role, ev.Stage)
	case model.EventTypeParticipantUpdated:
		return fmt.Sprintf("%s changed the permissions of %s at %s", actor, user, ev.Stage)
	case model.EventTypeParticipantRemoved:
		return fmt.Sprintf("%s removed %s as %s at %s", actor, user, ev.Role, ev.Stage)
	case model.EventTypeQueryCreated:
		return fmt.Sprintf("%s opened a query at %s", actor, ev.Stage)
	case model.EventTypeQueryNoteAdded:
		return fmt.Sprintf("%s replied to a query at %s", actor, ev.Stage)
	case model.EventTypeQueryClosed:
		return fmt.Sprintf("%s closed a query at %s", actor, ev.Stage)
	}
	return fmt.Sprintf("%s: %s", actor, ev.Type)
}

func displayName(name string, userID *int64) string {
	if name != "" {
		return name
	}
	if userID != nil {
		return fmt.Sprintf("user %d", *userID)
	}
	return "someone"
}
