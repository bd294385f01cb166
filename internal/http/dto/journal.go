package dto

import (
	"time"

	"journalflow.app/editorial/internal/model"
)

type JournalRoleRequest struct {
	Role   string `json:"role" binding:"required"`
	UserID int64  `json:"user_id,string" binding:"required"`
}

type JournalRoleGrantResponse struct {
	AssignedAt time.Time `json:"assigned_at"`
	Role       string    `json:"role"`
}

type JournalUserResponse struct {
	Name   string                     `json:"name"`
	Email  string                     `json:"email"`
	Roles  []JournalRoleGrantResponse `json:"roles"`
	UserID int64                      `json:"user_id,string"`
}

func ToJournalUserResponses(users []model.JournalUser) []JournalUserResponse {
	out := make([]JournalUserResponse, 0, len(users))
	for _, u := range users {
		grants := make([]JournalRoleGrantResponse, 0, len(u.Roles))
		for _, g := range u.Roles {
			grants = append(grants, JournalRoleGrantResponse{AssignedAt: g.AssignedAt, Role: string(g.Role)})
		}
		out = append(out, JournalUserResponse{
			Name:   u.Name,
			Email:  u.Email,
			Roles:  grants,
			UserID: u.UserID,
		})
	}
	return out
}

type JournalUsersResponse struct {
	Users []JournalUserResponse `json:"users"`
	OK    bool                  `json:"ok"`
}
