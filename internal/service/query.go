package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"journalflow.app/editorial/common"
	"journalflow.app/editorial/common/id"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/store"
)

type CreateQueryParams struct {
	Title          *string
	Stage          model.Stage
	AuthorName     string
	Message        string
	ParticipantIDs []int64
	SubmissionID   int64
	AuthorID       int64
}

type ReplyParams struct {
	Title        *string
	AuthorName   string
	Message      string
	SubmissionID int64
	QueryID      int64
	AuthorID     int64
}

// QueryService owns discussion threads and their notes. Closed threads
// accept no further notes.
type QueryService interface {
	Create(ctx context.Context, params CreateQueryParams) (*model.Query, error)
	Reply(ctx context.Context, params ReplyParams) (*model.Note, error)
	// Close reports changed=false when the query was already closed.
	Close(ctx context.Context, submissionID, queryID int64) (q *model.Query, changed bool, err error)
	Get(ctx context.Context, submissionID, queryID int64) (*model.Query, error)
	List(ctx context.Context, submissionID int64, stage *model.Stage) ([]model.Query, error)
}

type queryService struct {
	txRunner    TxRunner
	queries     store.QueryStore
	submissions store.SubmissionStore
	directory   DirectoryService
}

func NewQueryService(txRunner TxRunner, queries store.QueryStore, submissions store.SubmissionStore, directory DirectoryService) QueryService {
	return &queryService{
		txRunner:    txRunner,
		queries:     queries,
		submissions: submissions,
		directory:   directory,
	}
}

func (s *queryService) Create(ctx context.Context, params CreateQueryParams) (*model.Query, error) {
	message, ok := common.TrimMessage(params.Message)
	if !ok {
		return nil, ErrEmptyMessage
	}
	if params.SubmissionID <= 0 || params.AuthorID <= 0 {
		return nil, validationError("submission_id and author are required")
	}
	if !params.Stage.Valid() {
		return nil, validationError("unknown stage %q", params.Stage)
	}

	submission, err := s.submissions.GetByID(ctx, params.SubmissionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("getting submission: %w", err)
	}

	participants := participantSet(params.AuthorID, params.ParticipantIDs)
	if err := s.checkParticipants(ctx, submission.JournalID, params.AuthorID, participants); err != nil {
		return nil, err
	}

	title := trimTitle(params.Title)

	var created *model.Query
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		// The submission row lock serialises seq allocation per submission.
		if err := sp.Submissions().Lock(ctx, params.SubmissionID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrSubmissionNotFound
			}
			return fmt.Errorf("locking submission: %w", err)
		}

		seq, err := sp.Queries().NextSeq(ctx, params.SubmissionID, params.Stage)
		if err != nil {
			return fmt.Errorf("allocating query seq: %w", err)
		}

		q := &model.Query{
			ID:           id.New(),
			SubmissionID: params.SubmissionID,
			Stage:        params.Stage,
			Seq:          seq,
		}
		if err := sp.Queries().Create(ctx, q); err != nil {
			return fmt.Errorf("creating query: %w", err)
		}

		for i, userID := range participants {
			if err := sp.Queries().AddParticipant(ctx, q.ID, userID, int32(i)); err != nil {
				return fmt.Errorf("adding query participant %d: %w", userID, err)
			}
		}

		note := &model.Note{
			ID:       id.New(),
			QueryID:  q.ID,
			UserID:   params.AuthorID,
			UserName: params.AuthorName,
			Title:    title,
			Contents: message,
		}
		if err := sp.Queries().AddNote(ctx, note); err != nil {
			return fmt.Errorf("adding first note: %w", err)
		}

		q.Participants = participants
		q.Notes = []model.Note{*note}
		created = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "query created",
		"query_id", created.ID,
		"submission_id", created.SubmissionID,
		"stage", created.Stage,
		"seq", created.Seq,
		"participants", len(created.Participants),
	)

	return created, nil
}

// checkParticipants requires every named participant other than the author
// to be a directory user of the journal.
func (s *queryService) checkParticipants(ctx context.Context, journalID, authorID int64, participants []int64) error {
	if len(participants) <= 1 {
		return nil
	}
	users, err := s.directory.ListJournalUsers(ctx, journalID)
	if err != nil {
		return fmt.Errorf("checking directory: %w", err)
	}
	known := make(map[int64]struct{}, len(users))
	for _, u := range users {
		known[u.UserID] = struct{}{}
	}
	for _, userID := range participants {
		if userID == authorID {
			continue
		}
		if _, ok := known[userID]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownUser, userID)
		}
	}
	return nil
}

func (s *queryService) Reply(ctx context.Context, params ReplyParams) (*model.Note, error) {
	message, ok := common.TrimMessage(params.Message)
	if !ok {
		return nil, ErrEmptyMessage
	}
	if params.SubmissionID <= 0 || params.QueryID <= 0 || params.AuthorID <= 0 {
		return nil, validationError("submission_id, query_id and author are required")
	}

	var note *model.Note
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		q, err := sp.Queries().GetForUpdate(ctx, params.SubmissionID, params.QueryID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrQueryNotFound
			}
			return fmt.Errorf("locking query: %w", err)
		}
		if q.Closed {
			return ErrQueryClosed
		}

		n := &model.Note{
			ID:       id.New(),
			QueryID:  q.ID,
			UserID:   params.AuthorID,
			UserName: params.AuthorName,
			Title:    trimTitle(params.Title),
			Contents: message,
		}
		if err := sp.Queries().AddNote(ctx, n); err != nil {
			return fmt.Errorf("adding note: %w", err)
		}
		if _, err := sp.Queries().Touch(ctx, q.ID); err != nil {
			return fmt.Errorf("touching query: %w", err)
		}

		note = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "query note added",
		"query_id", params.QueryID,
		"note_id", note.ID,
		"user_id", params.AuthorID,
	)

	return note, nil
}

func (s *queryService) Close(ctx context.Context, submissionID, queryID int64) (*model.Query, bool, error) {
	if submissionID <= 0 || queryID <= 0 {
		return nil, false, validationError("submission_id and query_id are required")
	}

	q, err := s.queries.Close(ctx, submissionID, queryID)
	if err == nil {
		slog.InfoContext(ctx, "query closed", "query_id", queryID, "submission_id", submissionID)
		return q, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("closing query: %w", err)
	}

	// Nothing open matched: either the query is already closed or it does not exist.
	existing, err := s.Get(ctx, submissionID, queryID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *queryService) Get(ctx context.Context, submissionID, queryID int64) (*model.Query, error) {
	q, err := s.queries.Get(ctx, submissionID, queryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrQueryNotFound
		}
		return nil, fmt.Errorf("getting query: %w", err)
	}
	return q, nil
}

func (s *queryService) List(ctx context.Context, submissionID int64, stage *model.Stage) ([]model.Query, error) {
	if stage != nil && !stage.Valid() {
		return nil, validationError("unknown stage %q", *stage)
	}
	qs, err := s.queries.List(ctx, submissionID, stage)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}
	return qs, nil
}

// trimTitle drops blank titles.
func trimTitle(title *string) *string {
	if title == nil {
		return nil
	}
	if t, ok := common.TrimMessage(*title); ok {
		return &t
	}
	return nil
}

// participantSet puts the author first and drops duplicates and non-positive ids.
func participantSet(authorID int64, ids []int64) []int64 {
	seen := map[int64]struct{}{authorID: {}}
	out := []int64{authorID}
	for _, userID := range ids {
		if userID <= 0 {
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		out = append(out, userID)
	}
	return out
}
