package model

import "time"

type EventType string

const (
	EventTypeParticipantAssigned EventType = "participant_assigned"
	EventTypeParticipantUpdated  EventType = "participant_updated"
	EventTypeParticipantRemoved  EventType = "participant_removed"
	EventTypeQueryCreated        EventType = "query_created"
	EventTypeQueryNoteAdded      EventType = "query_note_added"
	EventTypeQueryClosed         EventType = "query_closed"
)

func (t EventType) Category() ActivityCategory {
	switch t {
	case EventTypeQueryCreated, EventTypeQueryNoteAdded, EventTypeQueryClosed:
		return ActivityCategoryQueries
	}
	return ActivityCategoryParticipants
}

func (t EventType) Valid() bool {
	switch t {
	case EventTypeParticipantAssigned, EventTypeParticipantUpdated, EventTypeParticipantRemoved,
		EventTypeQueryCreated, EventTypeQueryNoteAdded, EventTypeQueryClosed:
		return true
	}
	return false
}

// WorkflowEvent is published after a committed workflow mutation.
// ID doubles as the activity log id so redelivery is idempotent.
type WorkflowEvent struct {
	OccurredAt   time.Time `json:"occurred_at"`
	QueryID      *int64    `json:"query_id,omitempty"`
	NoteID       *int64    `json:"note_id,omitempty"`
	UserID       *int64    `json:"user_id,omitempty"`
	Type         EventType `json:"type"`
	Stage        Stage     `json:"stage,omitempty"`
	Role         Role      `json:"role,omitempty"`
	ActorName    string    `json:"actor_name,omitempty"`
	UserName     string    `json:"user_name,omitempty"`
	TraceID      string    `json:"trace_id,omitempty"`
	Recipients   []int64   `json:"recipients,omitempty"`
	ID           int64     `json:"id"`
	SubmissionID int64     `json:"submission_id"`
	ActorID      int64     `json:"actor_id"`
}
