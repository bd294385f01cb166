package store

import (
	"context"

	"journalflow.app/editorial/core/db/sqlc"
	"journalflow.app/editorial/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, translateError(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		AvatarUrl:   user.AvatarURL,
		WorkosID:    user.WorkOSID,
		IsSiteAdmin: user.IsSiteAdmin,
	})
	if err != nil {
		return translateError(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) UpsertByEmail(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpsertUserByEmail(ctx, sqlc.UpsertUserByEmailParams{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarUrl: user.AvatarURL,
		WorkosID:  user.WorkOSID,
	})
	if err != nil {
		return translateError(err)
	}
	*user = *toUserModel(row)
	return nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		AvatarURL:   row.AvatarUrl,
		WorkOSID:    row.WorkosID,
		IsSiteAdmin: row.IsSiteAdmin,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
