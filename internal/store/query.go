package store

import (
	"context"
	"time"

	"journalflow.app/editorial/core/db/sqlc"
	"journalflow.app/editorial/internal/model"
)

type queryStore struct {
	queries *sqlc.Queries
}

func newQueryStore(queries *sqlc.Queries) QueryStore {
	return &queryStore{queries: queries}
}

func (s *queryStore) NextSeq(ctx context.Context, submissionID int64, stage model.Stage) (int32, error) {
	return s.queries.NextQuerySeq(ctx, sqlc.NextQuerySeqParams{
		SubmissionID: submissionID,
		Stage:        string(stage),
	})
}

func (s *queryStore) Create(ctx context.Context, q *model.Query) error {
	row, err := s.queries.CreateQuery(ctx, sqlc.CreateQueryParams{
		ID:           q.ID,
		SubmissionID: q.SubmissionID,
		Stage:        string(q.Stage),
		Seq:          q.Seq,
	})
	if err != nil {
		return translateError(err)
	}
	applyQueryRow(q, row)
	return nil
}

func (s *queryStore) AddParticipant(ctx context.Context, queryID, userID int64, position int32) error {
	err := s.queries.AddQueryParticipant(ctx, sqlc.AddQueryParticipantParams{
		QueryID:  queryID,
		UserID:   userID,
		Position: position,
	})
	return translateError(err)
}

func (s *queryStore) AddNote(ctx context.Context, note *model.Note) error {
	row, err := s.queries.CreateQueryNote(ctx, sqlc.CreateQueryNoteParams{
		ID:       note.ID,
		QueryID:  note.QueryID,
		UserID:   note.UserID,
		UserName: note.UserName,
		Title:    note.Title,
		Contents: note.Contents,
	})
	if err != nil {
		return translateError(err)
	}
	*note = toNoteModel(row)
	return nil
}

func (s *queryStore) GetForUpdate(ctx context.Context, submissionID, queryID int64) (*model.Query, error) {
	row, err := s.queries.GetQueryForUpdate(ctx, sqlc.GetQueryForUpdateParams{
		ID:           queryID,
		SubmissionID: submissionID,
	})
	if err != nil {
		return nil, translateError(err)
	}
	q := &model.Query{}
	applyQueryRow(q, row)
	return q, nil
}

func (s *queryStore) Get(ctx context.Context, submissionID, queryID int64) (*model.Query, error) {
	row, err := s.queries.GetQuery(ctx, sqlc.GetQueryParams{
		ID:           queryID,
		SubmissionID: submissionID,
	})
	if err != nil {
		return nil, translateError(err)
	}
	qs, err := s.hydrate(ctx, []sqlc.Query{row})
	if err != nil {
		return nil, err
	}
	return &qs[0], nil
}

func (s *queryStore) Touch(ctx context.Context, queryID int64) (time.Time, error) {
	row, err := s.queries.TouchQuery(ctx, queryID)
	if err != nil {
		return time.Time{}, translateError(err)
	}
	return row.DateModified.Time, nil
}

func (s *queryStore) Close(ctx context.Context, submissionID, queryID int64) (*model.Query, error) {
	row, err := s.queries.CloseQuery(ctx, sqlc.CloseQueryParams{
		ID:           queryID,
		SubmissionID: submissionID,
	})
	if err != nil {
		return nil, translateError(err)
	}
	qs, err := s.hydrate(ctx, []sqlc.Query{row})
	if err != nil {
		return nil, err
	}
	return &qs[0], nil
}

func (s *queryStore) List(ctx context.Context, submissionID int64, stage *model.Stage) ([]model.Query, error) {
	var stageFilter *string
	if stage != nil {
		v := string(*stage)
		stageFilter = &v
	}
	rows, err := s.queries.ListQueries(ctx, sqlc.ListQueriesParams{
		SubmissionID: submissionID,
		Stage:        stageFilter,
	})
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, rows)
}

// hydrate loads participants and notes for rows with two batched queries.
func (s *queryStore) hydrate(ctx context.Context, rows []sqlc.Query) ([]model.Query, error) {
	out := make([]model.Query, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]int64, len(rows))
	index := make(map[int64]int, len(rows))
	for i, row := range rows {
		applyQueryRow(&out[i], row)
		out[i].Participants = []int64{}
		out[i].Notes = []model.Note{}
		ids[i] = row.ID
		index[row.ID] = i
	}

	participants, err := s.queries.ListQueryParticipants(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		i := index[p.QueryID]
		out[i].Participants = append(out[i].Participants, p.UserID)
	}

	notes, err := s.queries.ListQueryNotes(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		i := index[n.QueryID]
		out[i].Notes = append(out[i].Notes, toNoteModel(n))
	}

	return out, nil
}

func applyQueryRow(q *model.Query, row sqlc.Query) {
	q.ID = row.ID
	q.SubmissionID = row.SubmissionID
	q.Stage = model.Stage(row.Stage)
	q.Seq = row.Seq
	q.Closed = row.Closed
	q.DatePosted = row.DatePosted.Time
	q.DateModified = row.DateModified.Time
}

func toNoteModel(row sqlc.QueryNote) model.Note {
	return model.Note{
		ID:          row.ID,
		QueryID:     row.QueryID,
		UserID:      row.UserID,
		UserName:    row.UserName,
		Title:       row.Title,
		Contents:    row.Contents,
		DateCreated: row.DateCreated.Time,
	}
}
