package model

import "time"

type Session struct {
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	WorkOSSessionID *string   `json:"-"`
	ID              int64     `json:"id,string"`
	UserID          int64     `json:"user_id,string"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
