package dto

import (
	"encoding/json"
	"time"

	"journalflow.app/editorial/internal/model"
)

type ActivityLogResponse struct {
	CreatedAt time.Time       `json:"created_at"`
	Category  string          `json:"category"`
	EventType string          `json:"event_type"`
	Message   string          `json:"message"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	ID        int64           `json:"id,string"`
	ActorID   int64           `json:"actor_id,string"`
}

type ActivityResponse struct {
	Activity []ActivityLogResponse `json:"activity"`
	OK       bool                  `json:"ok"`
}

func ToActivityResponse(logs []model.ActivityLog) *ActivityResponse {
	out := make([]ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ActivityLogResponse{
			CreatedAt: l.CreatedAt,
			Category:  string(l.Category),
			EventType: string(l.EventType),
			Message:   l.Message,
			Metadata:  l.Metadata,
			ID:        l.ID,
			ActorID:   l.ActorID,
		})
	}
	return &ActivityResponse{Activity: out, OK: true}
}

type NotificationResponse struct {
	CreatedAt    time.Time  `json:"created_at"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	QueryID      *int64     `json:"query_id,string,omitempty"`
	Kind         string     `json:"kind"`
	Message      string     `json:"message"`
	ID           int64      `json:"id,string"`
	SubmissionID int64      `json:"submission_id,string"`
}

func ToNotificationResponse(n *model.Notification) *NotificationResponse {
	return &NotificationResponse{
		CreatedAt:    n.CreatedAt,
		ReadAt:       n.ReadAt,
		QueryID:      n.QueryID,
		Kind:         string(n.Kind),
		Message:      n.Message,
		ID:           n.ID,
		SubmissionID: n.SubmissionID,
	}
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	OK            bool                   `json:"ok"`
}

func ToNotificationsResponse(ns []model.Notification) *NotificationsResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for i := range ns {
		out = append(out, *ToNotificationResponse(&ns[i]))
	}
	return &NotificationsResponse{Notifications: out, OK: true}
}
