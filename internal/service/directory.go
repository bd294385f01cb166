package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"journalflow.app/editorial/internal/cache"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/store"
)

// DirectoryService answers which users belong to a journal. Results are
// cached per journal; cache failures fall back to the database.
type DirectoryService interface {
	ListJournalUsers(ctx context.Context, journalID int64) ([]model.JournalUser, error)
	IsJournalUser(ctx context.Context, journalID, userID int64) (bool, error)
	Invalidate(ctx context.Context, journalID int64)
}

type directoryService struct {
	roles store.JournalRoleStore
	cache cache.Cache
	ttl   time.Duration
}

// NewDirectoryService builds a DirectoryService. c may be nil to disable caching.
func NewDirectoryService(roles store.JournalRoleStore, c cache.Cache, ttl time.Duration) DirectoryService {
	return &directoryService{roles: roles, cache: c, ttl: ttl}
}

func (s *directoryService) ListJournalUsers(ctx context.Context, journalID int64) ([]model.JournalUser, error) {
	key := cache.DirectoryKey(journalID)

	if s.cache != nil {
		var cached []model.JournalUser
		err := cache.GetJSON(ctx, s.cache, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.WarnContext(ctx, "directory cache read failed", "error", err, "journal_id", journalID)
		}
	}

	users, err := s.roles.ListJournalUsers(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("listing journal users: %w", err)
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, users, s.ttl); err != nil {
			slog.WarnContext(ctx, "directory cache write failed", "error", err, "journal_id", journalID)
		}
	}

	return users, nil
}

func (s *directoryService) IsJournalUser(ctx context.Context, journalID, userID int64) (bool, error) {
	users, err := s.ListJournalUsers(ctx, journalID)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *directoryService) Invalidate(ctx context.Context, journalID int64) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Del(ctx, cache.DirectoryKey(journalID)); err != nil {
		slog.WarnContext(ctx, "directory cache invalidation failed", "error", err, "journal_id", journalID)
	}
}
