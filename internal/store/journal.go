package store

import (
	"context"

	"journalflow.app/editorial/core/db/sqlc"
	"journalflow.app/editorial/internal/model"
)

type journalStore struct {
	queries *sqlc.Queries
}

func newJournalStore(queries *sqlc.Queries) JournalStore {
	return &journalStore{queries: queries}
}

func (s *journalStore) Create(ctx context.Context, journal *model.Journal) error {
	row, err := s.queries.CreateJournal(ctx, sqlc.CreateJournalParams{
		ID:   journal.ID,
		Name: journal.Name,
		Path: journal.Path,
	})
	if err != nil {
		return translateError(err)
	}
	*journal = toJournalModel(row)
	return nil
}

func (s *journalStore) GetByID(ctx context.Context, id int64) (*model.Journal, error) {
	row, err := s.queries.GetJournal(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	j := toJournalModel(row)
	return &j, nil
}

func (s *journalStore) List(ctx context.Context) ([]model.Journal, error) {
	rows, err := s.queries.ListJournals(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Journal, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJournalModel(row))
	}
	return out, nil
}

func toJournalModel(row sqlc.Journal) model.Journal {
	return model.Journal{
		ID:        row.ID,
		Name:      row.Name,
		Path:      row.Path,
		CreatedAt: row.CreatedAt.Time,
	}
}

type journalRoleStore struct {
	queries *sqlc.Queries
}

func newJournalRoleStore(queries *sqlc.Queries) JournalRoleStore {
	return &journalRoleStore{queries: queries}
}

func (s *journalRoleStore) Upsert(ctx context.Context, journalID, userID int64, role model.JournalRole) (*model.JournalRoleAssignment, error) {
	row, err := s.queries.UpsertJournalUserRole(ctx, sqlc.UpsertJournalUserRoleParams{
		JournalID: journalID,
		UserID:    userID,
		Role:      string(role),
	})
	if err != nil {
		return nil, translateError(err)
	}
	a := toJournalRoleModel(row)
	return &a, nil
}

func (s *journalRoleStore) Delete(ctx context.Context, journalID, userID int64, role model.JournalRole) error {
	n, err := s.queries.DeleteJournalUserRole(ctx, sqlc.DeleteJournalUserRoleParams{
		JournalID: journalID,
		UserID:    userID,
		Role:      string(role),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListJournalUsers groups role rows by user, keeping the query's name order.
func (s *journalRoleStore) ListJournalUsers(ctx context.Context, journalID int64) ([]model.JournalUser, error) {
	rows, err := s.queries.ListJournalUsers(ctx, journalID)
	if err != nil {
		return nil, err
	}

	users := make([]model.JournalUser, 0)
	index := make(map[int64]int)
	for _, row := range rows {
		i, ok := index[row.UserID]
		if !ok {
			users = append(users, model.JournalUser{
				UserID: row.UserID,
				Name:   row.UserName,
				Email:  row.UserEmail,
				Roles:  []model.JournalRoleGrant{},
			})
			i = len(users) - 1
			index[row.UserID] = i
		}
		users[i].Roles = append(users[i].Roles, model.JournalRoleGrant{
			Role:       model.JournalRole(row.Role),
			AssignedAt: row.AssignedAt.Time,
		})
	}
	return users, nil
}

func (s *journalRoleStore) ListByUser(ctx context.Context, userID int64) ([]model.JournalRoleAssignment, error) {
	rows, err := s.queries.ListUserJournalRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.JournalRoleAssignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJournalRoleModel(row))
	}
	return out, nil
}

func (s *journalRoleStore) IsMember(ctx context.Context, journalID, userID int64) (bool, error) {
	return s.queries.IsJournalUser(ctx, sqlc.IsJournalUserParams{
		JournalID: journalID,
		UserID:    userID,
	})
}

func toJournalRoleModel(row sqlc.JournalUserRole) model.JournalRoleAssignment {
	return model.JournalRoleAssignment{
		JournalID:  row.JournalID,
		UserID:     row.UserID,
		Role:       model.JournalRole(row.Role),
		AssignedAt: row.AssignedAt.Time,
	}
}
