package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"journalflow.app/editorial/core/db/sqlc"
	"journalflow.app/editorial/internal/model"
)

type participantStore struct {
	queries *sqlc.Queries
}

func newParticipantStore(queries *sqlc.Queries) ParticipantStore {
	return &participantStore{queries: queries}
}

// Create relies on ON CONFLICT DO NOTHING: a taken tuple yields no row.
func (s *participantStore) Create(ctx context.Context, p *model.Participant) error {
	row, err := s.queries.CreateStageAssignment(ctx, sqlc.CreateStageAssignmentParams{
		ID:                p.ID,
		SubmissionID:      p.SubmissionID,
		Stage:             string(p.Stage),
		UserID:            p.UserID,
		Role:              string(p.Role),
		RecommendOnly:     p.RecommendOnly,
		CanChangeMetadata: p.CanChangeMetadata,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyExists
		}
		return translateError(err)
	}
	*p = toParticipantModel(sqlc.ListStageAssignmentsRow(row))
	return nil
}

func (s *participantStore) UpdatePermissions(ctx context.Context, params UpdatePermissionsParams) ([]model.Participant, error) {
	rows, err := s.queries.UpdateStageAssignmentPermissions(ctx, sqlc.UpdateStageAssignmentPermissionsParams{
		RecommendOnly:     params.RecommendOnly,
		CanChangeMetadata: params.CanChangeMetadata,
		SubmissionID:      params.SubmissionID,
		Stage:             string(params.Stage),
		UserID:            params.UserID,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	out := make([]model.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, toParticipantModel(sqlc.ListStageAssignmentsRow(row)))
	}
	return out, nil
}

func (s *participantStore) Delete(ctx context.Context, submissionID int64, stage model.Stage, userID int64, role model.Role) error {
	n, err := s.queries.DeleteStageAssignment(ctx, sqlc.DeleteStageAssignmentParams{
		SubmissionID: submissionID,
		Stage:        string(stage),
		UserID:       userID,
		Role:         string(role),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *participantStore) ListBySubmission(ctx context.Context, submissionID int64) ([]model.Participant, error) {
	rows, err := s.queries.ListStageAssignments(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, toParticipantModel(row))
	}
	return out, nil
}

func toParticipantModel(row sqlc.ListStageAssignmentsRow) model.Participant {
	return model.Participant{
		ID:                row.ID,
		SubmissionID:      row.SubmissionID,
		Stage:             model.Stage(row.Stage),
		UserID:            row.UserID,
		Role:              model.Role(row.Role),
		RecommendOnly:     row.RecommendOnly,
		CanChangeMetadata: row.CanChangeMetadata,
		AssignedAt:        row.AssignedAt.Time,
		UserName:          row.UserName,
		UserEmail:         row.UserEmail,
	}
}
