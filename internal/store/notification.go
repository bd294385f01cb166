package store

import (
	"context"

	"journalflow.app/editorial/core/db/sqlc"
	"journalflow.app/editorial/internal/model"
)

type notificationStore struct {
	queries *sqlc.Queries
}

func newNotificationStore(queries *sqlc.Queries) NotificationStore {
	return &notificationStore{queries: queries}
}

// Create is a no-op returning false when the user already has a
// notification for the same event.
func (s *notificationStore) Create(ctx context.Context, n *model.Notification) (bool, error) {
	affected, err := s.queries.CreateNotification(ctx, sqlc.CreateNotificationParams{
		ID:           n.ID,
		EventID:      n.EventID,
		UserID:       n.UserID,
		SubmissionID: n.SubmissionID,
		QueryID:      n.QueryID,
		Kind:         string(n.Kind),
		Message:      n.Message,
	})
	if err != nil {
		return false, translateError(err)
	}
	return affected > 0, nil
}

func (s *notificationStore) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int32) ([]model.Notification, error) {
	rows, err := s.queries.ListNotifications(ctx, sqlc.ListNotificationsParams{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, toNotificationModel(row))
	}
	return out, nil
}

func (s *notificationStore) MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	row, err := s.queries.MarkNotificationRead(ctx, sqlc.MarkNotificationReadParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		return nil, translateError(err)
	}
	n := toNotificationModel(row)
	return &n, nil
}

func toNotificationModel(row sqlc.Notification) model.Notification {
	return model.Notification{
		ID:           row.ID,
		EventID:      row.EventID,
		UserID:       row.UserID,
		SubmissionID: row.SubmissionID,
		QueryID:      row.QueryID,
		Kind:         model.NotificationKind(row.Kind),
		Message:      row.Message,
		ReadAt:       optionalTime(row.ReadAt),
		CreatedAt:    row.CreatedAt.Time,
	}
}
