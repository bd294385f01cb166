package dto

import (
	"time"

	"journalflow.app/editorial/internal/model"
)

type AssignParticipantRequest struct {
	Stage             string `json:"stage" binding:"required"`
	Role              string `json:"role" binding:"required"`
	UserID            int64  `json:"user_id,string" binding:"required"`
	RecommendOnly     bool   `json:"recommend_only"`
	CanChangeMetadata bool   `json:"can_change_metadata"`
}

// UpdatePermissionsRequest leaves a flag untouched when it is omitted.
type UpdatePermissionsRequest struct {
	Stage             string `json:"stage" binding:"required"`
	UserID            int64  `json:"user_id,string" binding:"required"`
	RecommendOnly     *bool  `json:"recommend_only"`
	CanChangeMetadata *bool  `json:"can_change_metadata"`
}

type RemoveParticipantRequest struct {
	Stage  string `json:"stage" binding:"required"`
	Role   string `json:"role" binding:"required"`
	UserID int64  `json:"user_id,string" binding:"required"`
}

type ParticipantResponse struct {
	AssignedAt        time.Time `json:"assigned_at"`
	Stage             string    `json:"stage"`
	Role              string    `json:"role"`
	UserName          string    `json:"user_name"`
	UserEmail         string    `json:"user_email"`
	ID                int64     `json:"id,string"`
	SubmissionID      int64     `json:"submission_id,string"`
	UserID            int64     `json:"user_id,string"`
	RecommendOnly     bool      `json:"recommend_only"`
	CanChangeMetadata bool      `json:"can_change_metadata"`
}

func ToParticipantResponse(p *model.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		AssignedAt:        p.AssignedAt,
		Stage:             string(p.Stage),
		Role:              string(p.Role),
		UserName:          p.UserName,
		UserEmail:         p.UserEmail,
		ID:                p.ID,
		SubmissionID:      p.SubmissionID,
		UserID:            p.UserID,
		RecommendOnly:     p.RecommendOnly,
		CanChangeMetadata: p.CanChangeMetadata,
	}
}

func ToParticipantResponses(ps []model.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(ps))
	for i := range ps {
		out = append(out, *ToParticipantResponse(&ps[i]))
	}
	return out
}

type AssignParticipantResponse struct {
	Participant *ParticipantResponse `json:"participant"`
	Message     string               `json:"message"`
	OK          bool                 `json:"ok"`
}

type ParticipantsResponse struct {
	Participants []ParticipantResponse `json:"participants"`
	OK           bool                  `json:"ok"`
}

type MessageResponse struct {
	Message string `json:"message,omitempty"`
	OK      bool   `json:"ok"`
}
