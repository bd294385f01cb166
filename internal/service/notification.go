package service

import (
	"context"
	"errors"
	"fmt"

	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/store"
)

const (
	DefaultNotificationLimit = 50
	MaxNotificationLimit     = 200
)

type NotificationService interface {
	List(ctx context.Context, caller model.Caller, unreadOnly bool, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, caller model.Caller, notificationID int64) (*model.Notification, error)
}

type notificationService struct {
	notifications store.NotificationStore
}

func NewNotificationService(notifications store.NotificationStore) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) List(ctx context.Context, caller model.Caller, unreadOnly bool, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	if limit > MaxNotificationLimit {
		limit = MaxNotificationLimit
	}

	ns, err := s.notifications.ListByUser(ctx, caller.UserID, unreadOnly, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return ns, nil
}

// MarkRead only touches notifications addressed to the caller; others look missing.
func (s *notificationService) MarkRead(ctx context.Context, caller model.Caller, notificationID int64) (*model.Notification, error) {
	if notificationID <= 0 {
		return nil, validationError("notification id is required")
	}

	n, err := s.notifications.MarkRead(ctx, notificationID, caller.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("marking notification read: %w", err)
	}
	return n, nil
}
