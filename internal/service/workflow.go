package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"journalflow.app/editorial/common"
	"journalflow.app/editorial/common/id"
	"journalflow.app/editorial/common/logger"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/store"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// EventPublisher delivers committed workflow events to the worker stream.
type EventPublisher interface {
	Publish(ctx context.Context, ev model.WorkflowEvent) error
}

// OperationRecorder counts façade calls by outcome.
type OperationRecorder interface {
	RecordOperation(operation, outcome string)
}

type NewQueryInput struct {
	Title          *string
	Stage          model.Stage
	Message        string
	ParticipantIDs []int64
	SubmissionID   int64
}

func (in NewQueryInput) validate() error {
	if _, ok := common.TrimMessage(in.Message); !ok {
		return ErrEmptyMessage
	}
	if in.SubmissionID <= 0 {
		return validationError("submission_id is required")
	}
	if !in.Stage.Valid() {
		return validationError("unknown stage %q", in.Stage)
	}
	return nil
}

type ReplyInput struct {
	Title        *string
	Message      string
	SubmissionID int64
	QueryID      int64
}

func (in ReplyInput) validate() error {
	if _, ok := common.TrimMessage(in.Message); !ok {
		return ErrEmptyMessage
	}
	if in.SubmissionID <= 0 || in.QueryID <= 0 {
		return validationError("submission_id and query_id are required")
	}
	return nil
}

// WorkflowService is the authorized entry point for the participant ledger
// and query threads. Every method acts on behalf of an explicit caller.
type WorkflowService interface {
	AssignParticipant(ctx context.Context, caller model.Caller, params AssignParams) (*model.Participant, error)
	UpdateParticipantPermissions(ctx context.Context, caller model.Caller, params UpdatePermissionsParams) ([]model.Participant, error)
	RemoveParticipant(ctx context.Context, caller model.Caller, submissionID int64, stage model.Stage, userID int64, role model.Role) error
	ListParticipants(ctx context.Context, caller model.Caller, submissionID int64) ([]model.Participant, error)

	CreateQuery(ctx context.Context, caller model.Caller, input NewQueryInput) (*model.Query, error)
	ReplyToQuery(ctx context.Context, caller model.Caller, input ReplyInput) (*model.Note, error)
	CloseQuery(ctx context.Context, caller model.Caller, submissionID, queryID int64) (*model.Query, bool, error)
	ListQueries(ctx context.Context, caller model.Caller, submissionID int64, stage *model.Stage) ([]model.Query, error)

	ListActivity(ctx context.Context, caller model.Caller, submissionID int64, limit int) ([]model.ActivityLog, error)
}

type workflowService struct {
	submissions  store.SubmissionStore
	activity     store.ActivityStore
	participants ParticipantService
	queries      QueryService
	publisher    EventPublisher
	recorder     OperationRecorder
}

// NewWorkflowService builds the façade. publisher and recorder may be nil.
func NewWorkflowService(
	submissions store.SubmissionStore,
	activity store.ActivityStore,
	participants ParticipantService,
	queries QueryService,
	publisher EventPublisher,
	recorder OperationRecorder,
) WorkflowService {
	return &workflowService{
		submissions:  submissions,
		activity:     activity,
		participants: participants,
		queries:      queries,
		publisher:    publisher,
		recorder:     recorder,
	}
}

func (s *workflowService) AssignParticipant(ctx context.Context, caller model.Caller, params AssignParams) (p *model.Participant, err error) {
	defer s.record("assign_participant", &err)

	if err = params.validate(); err != nil {
		return nil, err
	}
	if _, err = s.authorize(ctx, params.SubmissionID, caller.CanManageWorkflow); err != nil {
		return nil, err
	}

	p, err = s.participants.Assign(ctx, params)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, caller, model.WorkflowEvent{
		Type:         model.EventTypeParticipantAssigned,
		SubmissionID: p.SubmissionID,
		Stage:        p.Stage,
		Role:         p.Role,
		UserID:       &p.UserID,
		UserName:     p.UserName,
		Recipients:   []int64{p.UserID},
	})

	return p, nil
}

func (s *workflowService) UpdateParticipantPermissions(ctx context.Context, caller model.Caller, params UpdatePermissionsParams) (updated []model.Participant, err error) {
	defer s.record("update_participant_permissions", &err)

	if err = params.validate(); err != nil {
		return nil, err
	}
	if _, err = s.authorize(ctx, params.SubmissionID, caller.CanManageWorkflow); err != nil {
		return nil, err
	}

	updated, err = s.participants.UpdatePermissions(ctx, params)
	if err != nil {
		return nil, err
	}

	userID := params.UserID
	s.publish(ctx, caller, model.WorkflowEvent{
		Type:         model.EventTypeParticipantUpdated,
		SubmissionID: params.SubmissionID,
		Stage:        params.Stage,
		UserID:       &userID,
		UserName:     updated[0].UserName,
		Recipients:   []int64{userID},
	})

	return updated, nil
}

func (s *workflowService) RemoveParticipant(ctx context.Context, caller model.Caller, submissionID int64, stage model.Stage, userID int64, role model.Role) (err error) {
	defer s.record("remove_participant", &err)

	if err = validateRemoval(submissionID, stage, userID, role); err != nil {
		return err
	}
	if _, err = s.authorize(ctx, submissionID, caller.CanManageWorkflow); err != nil {
		return err
	}

	if err = s.participants.Remove(ctx, submissionID, stage, userID, role); err != nil {
		return err
	}

	s.publish(ctx, caller, model.WorkflowEvent{
		Type:         model.EventTypeParticipantRemoved,
		SubmissionID: submissionID,
		Stage:        stage,
		Role:         role,
		UserID:       &userID,
		Recipients:   []int64{userID},
	})

	return nil
}

func (s *workflowService) ListParticipants(ctx context.Context, caller model.Caller, submissionID int64) (participants []model.Participant, err error) {
	defer s.record("list_participants", &err)

	if _, err = s.authorize(ctx, submissionID, caller.InJournal); err != nil {
		return nil, err
	}
	return s.participants.List(ctx, submissionID)
}

func (s *workflowService) CreateQuery(ctx context.Context, caller model.Caller, input NewQueryInput) (q *model.Query, err error) {
	defer s.record("create_query", &err)

	if err = input.validate(); err != nil {
		return nil, err
	}
	if _, err = s.authorize(ctx, input.SubmissionID, caller.CanManageWorkflow); err != nil {
		return nil, err
	}

	q, err = s.queries.Create(ctx, CreateQueryParams{
		SubmissionID:   input.SubmissionID,
		Stage:          input.Stage,
		AuthorID:       caller.UserID,
		AuthorName:     caller.Name,
		Title:          input.Title,
		Message:        input.Message,
		ParticipantIDs: input.ParticipantIDs,
	})
	if err != nil {
		return nil, err
	}

	ev := model.WorkflowEvent{
		Type:         model.EventTypeQueryCreated,
		SubmissionID: q.SubmissionID,
		Stage:        q.Stage,
		QueryID:      &q.ID,
		Recipients:   q.Participants,
	}
	if len(q.Notes) > 0 {
		ev.NoteID = &q.Notes[0].ID
	}
	s.publish(ctx, caller, ev)

	return q, nil
}

func (s *workflowService) ReplyToQuery(ctx context.Context, caller model.Caller, input ReplyInput) (note *model.Note, err error) {
	defer s.record("reply_to_query", &err)

	if err = input.validate(); err != nil {
		return nil, err
	}
	submissionID := input.SubmissionID

	submission, err := s.loadSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	q, err := s.queries.Get(ctx, submissionID, input.QueryID)
	if err != nil {
		return nil, err
	}
	if !caller.CanManageWorkflow(submission.JournalID) && !q.HasParticipant(caller.UserID) {
		return nil, ErrForbidden
	}

	note, err = s.queries.Reply(ctx, ReplyParams{
		SubmissionID: submissionID,
		QueryID:      input.QueryID,
		AuthorID:     caller.UserID,
		AuthorName:   caller.Name,
		Title:        input.Title,
		Message:      input.Message,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, caller, model.WorkflowEvent{
		Type:         model.EventTypeQueryNoteAdded,
		SubmissionID: submissionID,
		Stage:        q.Stage,
		QueryID:      &q.ID,
		NoteID:       &note.ID,
		Recipients:   q.Participants,
	})

	return note, nil
}

func (s *workflowService) CloseQuery(ctx context.Context, caller model.Caller, submissionID, queryID int64) (q *model.Query, changed bool, err error) {
	defer s.record("close_query", &err)

	if _, err = s.authorize(ctx, submissionID, caller.CanManageWorkflow); err != nil {
		return nil, false, err
	}

	q, changed, err = s.queries.Close(ctx, submissionID, queryID)
	if err != nil {
		return nil, false, err
	}

	if changed {
		s.publish(ctx, caller, model.WorkflowEvent{
			Type:         model.EventTypeQueryClosed,
			SubmissionID: submissionID,
			Stage:        q.Stage,
			QueryID:      &q.ID,
			Recipients:   q.Participants,
		})
	}

	return q, changed, nil
}

func (s *workflowService) ListQueries(ctx context.Context, caller model.Caller, submissionID int64, stage *model.Stage) (qs []model.Query, err error) {
	defer s.record("list_queries", &err)

	if stage != nil && !stage.Valid() {
		return nil, validationError("unknown stage %q", *stage)
	}
	if _, err = s.authorize(ctx, submissionID, caller.InJournal); err != nil {
		return nil, err
	}
	return s.queries.List(ctx, submissionID, stage)
}

func (s *workflowService) ListActivity(ctx context.Context, caller model.Caller, submissionID int64, limit int) (logs []model.ActivityLog, err error) {
	defer s.record("list_activity", &err)

	if _, err = s.authorize(ctx, submissionID, caller.InJournal); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	logs, err = s.activity.ListBySubmission(ctx, submissionID, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return logs, nil
}

// authorize loads the submission and checks allowed against its journal.
// A missing submission is reported before any permission failure.
func (s *workflowService) authorize(ctx context.Context, submissionID int64, allowed func(journalID int64) bool) (*model.Submission, error) {
	submission, err := s.loadSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if !allowed(submission.JournalID) {
		return nil, ErrForbidden
	}
	return submission, nil
}

func (s *workflowService) loadSubmission(ctx context.Context, submissionID int64) (*model.Submission, error) {
	if submissionID <= 0 {
		return nil, validationError("submission_id is required")
	}
	submission, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("getting submission: %w", err)
	}
	return submission, nil
}

// publish is best effort: the mutation has already committed.
func (s *workflowService) publish(ctx context.Context, caller model.Caller, ev model.WorkflowEvent) {
	if s.publisher == nil {
		return
	}

	ev.ID = id.New()
	ev.ActorID = caller.UserID
	ev.ActorName = caller.Name
	ev.OccurredAt = time.Now().UTC()
	ev.TraceID = logger.TraceIDFromContext(ctx)

	if err := s.publisher.Publish(ctx, ev); err != nil {
		slog.WarnContext(ctx, "failed to publish workflow event",
			"error", err,
			"event_type", ev.Type,
			"submission_id", ev.SubmissionID,
		)
	}
}

func (s *workflowService) record(operation string, errp *error) {
	if s.recorder == nil {
		return
	}
	outcome := "ok"
	if *errp != nil {
		outcome = string(ErrorKind(*errp))
	}
	s.recorder.RecordOperation(operation, outcome)
}
