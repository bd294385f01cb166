package model

import "time"

type Journal struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	ID        int64     `json:"id,string"`
}

type JournalRoleAssignment struct {
	AssignedAt time.Time   `json:"assigned_at"`
	Role       JournalRole `json:"role"`
	JournalID  int64       `json:"journal_id,string"`
	UserID     int64       `json:"user_id,string"`
}

type JournalRoleGrant struct {
	AssignedAt time.Time   `json:"assigned_at"`
	Role       JournalRole `json:"role"`
}

// JournalUser is a directory entry: a user holding at least one role in a journal.
type JournalUser struct {
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Roles  []JournalRoleGrant `json:"roles"`
	UserID int64              `json:"user_id,string"`
}
