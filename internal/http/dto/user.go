package dto

import (
	"time"

	"journalflow.app/editorial/internal/model"
)

type UserResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	IsSiteAdmin bool      `json:"is_site_admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		AvatarURL:   u.AvatarURL,
		IsSiteAdmin: u.IsSiteAdmin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type JournalRoleBrief struct {
	JournalID int64  `json:"journal_id,string"`
	Role      string `json:"role"`
}

// MeResponse describes the signed-in caller and the journal roles it acts under.
type MeResponse struct {
	UserID    int64              `json:"user_id,string"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	SiteAdmin bool               `json:"site_admin"`
	Roles     []JournalRoleBrief `json:"roles"`
}

func ToMeResponse(c *model.Caller) *MeResponse {
	roles := make([]JournalRoleBrief, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, JournalRoleBrief{JournalID: r.JournalID, Role: string(r.Role)})
	}
	return &MeResponse{
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		SiteAdmin: c.SiteAdmin,
		Roles:     roles,
	}
}
