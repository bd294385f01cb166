package model

import "time"

type Participant struct {
	AssignedAt        time.Time `json:"assigned_at"`
	Stage             Stage     `json:"stage"`
	Role              Role      `json:"role"`
	UserName          string    `json:"user_name"`
	UserEmail         string    `json:"user_email"`
	ID                int64     `json:"id,string"`
	SubmissionID      int64     `json:"submission_id,string"`
	UserID            int64     `json:"user_id,string"`
	RecommendOnly     bool      `json:"recommend_only"`
	CanChangeMetadata bool      `json:"can_change_metadata"`
}
