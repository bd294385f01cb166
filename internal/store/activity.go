package store

import (
	"context"
	"encoding/json"

	"journalflow.app/editorial/core/db/sqlc"
	"journalflow.app/editorial/internal/model"
)

type activityStore struct {
	queries *sqlc.Queries
}

func newActivityStore(queries *sqlc.Queries) ActivityStore {
	return &activityStore{queries: queries}
}

func (s *activityStore) Create(ctx context.Context, entry *model.ActivityLog) (bool, error) {
	metadata := []byte(entry.Metadata)
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}
	n, err := s.queries.CreateActivityLog(ctx, sqlc.CreateActivityLogParams{
		ID:           entry.ID,
		SubmissionID: entry.SubmissionID,
		ActorID:      entry.ActorID,
		Category:     string(entry.Category),
		EventType:    string(entry.EventType),
		Message:      entry.Message,
		Metadata:     metadata,
	})
	if err != nil {
		return false, translateError(err)
	}
	return n > 0, nil
}

func (s *activityStore) ListBySubmission(ctx context.Context, submissionID int64, limit int32) ([]model.ActivityLog, error) {
	rows, err := s.queries.ListActivityLogs(ctx, sqlc.ListActivityLogsParams{
		SubmissionID: submissionID,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.ActivityLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.ActivityLog{
			ID:           row.ID,
			SubmissionID: row.SubmissionID,
			ActorID:      row.ActorID,
			Category:     model.ActivityCategory(row.Category),
			EventType:    model.EventType(row.EventType),
			Message:      row.Message,
			Metadata:     json.RawMessage(row.Metadata),
			CreatedAt:    row.CreatedAt.Time,
		})
	}
	return out, nil
}
