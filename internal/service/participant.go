package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"journalflow.app/editorial/common/id"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/policy"
	"journalflow.app/editorial/internal/store"
)

type AssignParams struct {
	Stage             model.Stage
	Role              model.Role
	SubmissionID      int64
	UserID            int64
	RecommendOnly     bool
	CanChangeMetadata bool
}

// UpdatePermissionsParams changes only the flags that are non-nil.
type UpdatePermissionsParams struct {
	RecommendOnly     *bool
	CanChangeMetadata *bool
	Stage             model.Stage
	SubmissionID      int64
	UserID            int64
}

func (p AssignParams) validate() error {
	if p.SubmissionID <= 0 || p.UserID <= 0 {
		return validationError("submission_id and user_id are required")
	}
	if p.Stage == "" || p.Role == "" {
		return validationError("stage and role are required")
	}
	if !p.Stage.Valid() {
		return validationError("unknown stage %q", p.Stage)
	}
	return policy.Validate(p.Stage, p.Role)
}

func (p UpdatePermissionsParams) validate() error {
	if p.SubmissionID <= 0 || p.UserID <= 0 {
		return validationError("submission_id and user_id are required")
	}
	if !p.Stage.Valid() {
		return validationError("unknown stage %q", p.Stage)
	}
	if p.RecommendOnly == nil && p.CanChangeMetadata == nil {
		return validationError("recommend_only or can_change_metadata is required")
	}
	return nil
}

func validateRemoval(submissionID int64, stage model.Stage, userID int64, role model.Role) error {
	if submissionID <= 0 || userID <= 0 || stage == "" || role == "" {
		return validationError("submission_id, stage, user_id and role are required")
	}
	if !stage.Valid() {
		return validationError("unknown stage %q", stage)
	}
	return nil
}

// ParticipantService is the assignment ledger: who holds which role at
// which stage of a submission.
type ParticipantService interface {
	Assign(ctx context.Context, params AssignParams) (*model.Participant, error)
	UpdatePermissions(ctx context.Context, params UpdatePermissionsParams) ([]model.Participant, error)
	Remove(ctx context.Context, submissionID int64, stage model.Stage, userID int64, role model.Role) error
	List(ctx context.Context, submissionID int64) ([]model.Participant, error)
}

type participantService struct {
	submissions  store.SubmissionStore
	participants store.ParticipantStore
	directory    DirectoryService
}

func NewParticipantService(submissions store.SubmissionStore, participants store.ParticipantStore, directory DirectoryService) ParticipantService {
	return &participantService{
		submissions:  submissions,
		participants: participants,
		directory:    directory,
	}
}

func (s *participantService) Assign(ctx context.Context, params AssignParams) (*model.Participant, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	submission, err := s.submissions.GetByID(ctx, params.SubmissionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("getting submission: %w", err)
	}

	member, err := s.directory.IsJournalUser(ctx, submission.JournalID, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("checking directory: %w", err)
	}
	if !member {
		return nil, ErrUnknownUser
	}

	p := &model.Participant{
		ID:                id.New(),
		SubmissionID:      params.SubmissionID,
		Stage:             params.Stage,
		UserID:            params.UserID,
		Role:              params.Role,
		RecommendOnly:     params.RecommendOnly,
		CanChangeMetadata: params.CanChangeMetadata,
	}

	if err := s.participants.Create(ctx, p); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return nil, ErrDuplicateAssignment
		case errors.Is(err, store.ErrNotFound):
			// a foreign key vanished between the checks and the insert
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("creating participant: %w", err)
	}

	slog.InfoContext(ctx, "participant assigned",
		"participant_id", p.ID,
		"submission_id", p.SubmissionID,
		"stage", p.Stage,
		"user_id", p.UserID,
		"role", p.Role,
	)

	return p, nil
}

func (s *participantService) UpdatePermissions(ctx context.Context, params UpdatePermissionsParams) ([]model.Participant, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	updated, err := s.participants.UpdatePermissions(ctx, store.UpdatePermissionsParams{
		SubmissionID:      params.SubmissionID,
		Stage:             params.Stage,
		UserID:            params.UserID,
		RecommendOnly:     params.RecommendOnly,
		CanChangeMetadata: params.CanChangeMetadata,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("updating participant permissions: %w", err)
	}

	slog.InfoContext(ctx, "participant permissions updated",
		"submission_id", params.SubmissionID,
		"stage", params.Stage,
		"user_id", params.UserID,
		"records", len(updated),
	)

	return updated, nil
}

func (s *participantService) Remove(ctx context.Context, submissionID int64, stage model.Stage, userID int64, role model.Role) error {
	if err := validateRemoval(submissionID, stage, userID, role); err != nil {
		return err
	}

	if err := s.participants.Delete(ctx, submissionID, stage, userID, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("removing participant: %w", err)
	}

	slog.InfoContext(ctx, "participant removed",
		"submission_id", submissionID,
		"stage", stage,
		"user_id", userID,
		"role", role,
	)

	return nil
}

func (s *participantService) List(ctx context.Context, submissionID int64) ([]model.Participant, error) {
	participants, err := s.participants.ListBySubmission(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	return participants, nil
}
