package store

import (
	"context"

	"journalflow.app/editorial/core/db/sqlc"
	"journalflow.app/editorial/internal/model"
)

type submissionStore struct {
	queries *sqlc.Queries
}

func newSubmissionStore(queries *sqlc.Queries) SubmissionStore {
	return &submissionStore{queries: queries}
}

func (s *submissionStore) Create(ctx context.Context, submission *model.Submission) error {
	stage := submission.CurrentStage
	if stage == "" {
		stage = model.StageSubmission
	}
	row, err := s.queries.CreateSubmission(ctx, sqlc.CreateSubmissionParams{
		ID:           submission.ID,
		JournalID:    submission.JournalID,
		Title:        submission.Title,
		CurrentStage: string(stage),
	})
	if err != nil {
		return translateError(err)
	}
	*submission = *toSubmissionModel(row)
	return nil
}

func (s *submissionStore) GetByID(ctx context.Context, id int64) (*model.Submission, error) {
	row, err := s.queries.GetSubmission(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return toSubmissionModel(row), nil
}

func (s *submissionStore) Lock(ctx context.Context, id int64) error {
	_, err := s.queries.LockSubmission(ctx, id)
	return translateError(err)
}

func toSubmissionModel(row sqlc.Submission) *model.Submission {
	return &model.Submission{
		ID:           row.ID,
		JournalID:    row.JournalID,
		Title:        row.Title,
		CurrentStage: model.Stage(row.CurrentStage),
	}
}
