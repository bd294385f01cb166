package model

import (
	"encoding/json"
	"time"
)

type ActivityCategory string

const (
	ActivityCategoryParticipants ActivityCategory = "participants"
	ActivityCategoryQueries      ActivityCategory = "queries"
)

type ActivityLog struct {
	CreatedAt    time.Time        `json:"created_at"`
	Category     ActivityCategory `json:"category"`
	EventType    EventType        `json:"event_type"`
	Message      string           `json:"message"`
	Metadata     json.RawMessage  `json:"metadata,omitempty"`
	ID           int64            `json:"id,string"`
	SubmissionID int64            `json:"submission_id,string"`
	ActorID      int64            `json:"actor_id,string"`
}
