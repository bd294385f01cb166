package model

import "time"

type NotificationKind string

const (
	NotificationKindAssigned     NotificationKind = "assigned"
	NotificationKindUnassigned   NotificationKind = "unassigned"
	NotificationKindPermissions  NotificationKind = "permissions_changed"
	NotificationKindQueryOpened  NotificationKind = "query_opened"
	NotificationKindQueryReplied NotificationKind = "query_replied"
	NotificationKindQueryClosed  NotificationKind = "query_closed"
)

type Notification struct {
	CreatedAt    time.Time        `json:"created_at"`
	ReadAt       *time.Time       `json:"read_at,omitempty"`
	QueryID      *int64           `json:"query_id,string,omitempty"`
	Kind         NotificationKind `json:"kind"`
	Message      string           `json:"message"`
	ID           int64            `json:"id,string"`
	EventID      int64            `json:"event_id,string"`
	UserID       int64            `json:"user_id,string"`
	SubmissionID int64            `json:"submission_id,string"`
}

func (n *Notification) Read() bool {
	return n.ReadAt != nil
}
