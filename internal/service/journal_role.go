package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/store"
)

// JournalRoleService manages journal-wide role grants. Only site admins and
// journal managers may change them.
type JournalRoleService interface {
	List(ctx context.Context, caller model.Caller, journalID int64) ([]model.JournalUser, error)
	Add(ctx context.Context, caller model.Caller, journalID, userID int64, role model.JournalRole) (*model.JournalRoleAssignment, error)
	Remove(ctx context.Context, caller model.Caller, journalID, userID int64, role model.JournalRole) error
	// Directory lists assignable users for editorial staff of the journal.
	Directory(ctx context.Context, caller model.Caller, journalID int64) ([]model.JournalUser, error)
}

type journalRoleService struct {
	journals  store.JournalStore
	users     store.UserStore
	roles     store.JournalRoleStore
	directory DirectoryService
}

func NewJournalRoleService(journals store.JournalStore, users store.UserStore, roles store.JournalRoleStore, directory DirectoryService) JournalRoleService {
	return &journalRoleService{
		journals:  journals,
		users:     users,
		roles:     roles,
		directory: directory,
	}
}

func (s *journalRoleService) List(ctx context.Context, caller model.Caller, journalID int64) ([]model.JournalUser, error) {
	if err := s.requireJournal(ctx, journalID); err != nil {
		return nil, err
	}
	if !caller.CanManageJournal(journalID) {
		return nil, ErrForbidden
	}

	users, err := s.roles.ListJournalUsers(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("listing journal users: %w", err)
	}
	return users, nil
}

func (s *journalRoleService) Add(ctx context.Context, caller model.Caller, journalID, userID int64, role model.JournalRole) (*model.JournalRoleAssignment, error) {
	if journalID <= 0 || userID <= 0 {
		return nil, validationError("journal_id and user_id are required")
	}
	if !role.Valid() {
		return nil, validationError("unknown journal role %q", role)
	}
	if err := s.requireJournal(ctx, journalID); err != nil {
		return nil, err
	}
	if !caller.CanManageJournal(journalID) {
		return nil, ErrForbidden
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	assignment, err := s.roles.Upsert(ctx, journalID, userID, role)
	if err != nil {
		return nil, fmt.Errorf("granting journal role: %w", err)
	}
	s.directory.Invalidate(ctx, journalID)

	slog.InfoContext(ctx, "journal role granted",
		"journal_id", journalID,
		"user_id", userID,
		"role", role,
		"granted_by", caller.UserID,
	)

	return assignment, nil
}

func (s *journalRoleService) Remove(ctx context.Context, caller model.Caller, journalID, userID int64, role model.JournalRole) error {
	if journalID <= 0 || userID <= 0 {
		return validationError("journal_id and user_id are required")
	}
	if !role.Valid() {
		return validationError("unknown journal role %q", role)
	}
	if err := s.requireJournal(ctx, journalID); err != nil {
		return err
	}
	if !caller.CanManageJournal(journalID) {
		return ErrForbidden
	}

	if err := s.roles.Delete(ctx, journalID, userID, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrJournalRoleNotFound
		}
		return fmt.Errorf("revoking journal role: %w", err)
	}
	s.directory.Invalidate(ctx, journalID)

	slog.InfoContext(ctx, "journal role revoked",
		"journal_id", journalID,
		"user_id", userID,
		"role", role,
		"revoked_by", caller.UserID,
	)

	return nil
}

func (s *journalRoleService) Directory(ctx context.Context, caller model.Caller, journalID int64) ([]model.JournalUser, error) {
	if err := s.requireJournal(ctx, journalID); err != nil {
		return nil, err
	}
	if !caller.CanManageWorkflow(journalID) {
		return nil, ErrForbidden
	}
	return s.directory.ListJournalUsers(ctx, journalID)
}

func (s *journalRoleService) requireJournal(ctx context.Context, journalID int64) error {
	if journalID <= 0 {
		return validationError("journal_id is required")
	}
	if _, err := s.journals.GetByID(ctx, journalID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrJournalNotFound
		}
		return fmt.Errorf("getting journal: %w", err)
	}
	return nil
}
