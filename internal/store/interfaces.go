package store

import (
	"context"
	"errors"
	"time"

	"journalflow.app/editorial/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a unique key is already taken
var ErrAlreadyExists = errors.New("already exists")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpsertByEmail(ctx context.Context, user *model.User) error // login sync
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type JournalStore interface {
	Create(ctx context.Context, journal *model.Journal) error
	GetByID(ctx context.Context, id int64) (*model.Journal, error)
	List(ctx context.Context) ([]model.Journal, error)
}

// JournalRoleStore covers journal-wide role grants, which also form the user directory.
type JournalRoleStore interface {
	Upsert(ctx context.Context, journalID, userID int64, role model.JournalRole) (*model.JournalRoleAssignment, error)
	Delete(ctx context.Context, journalID, userID int64, role model.JournalRole) error
	ListJournalUsers(ctx context.Context, journalID int64) ([]model.JournalUser, error)
	ListByUser(ctx context.Context, userID int64) ([]model.JournalRoleAssignment, error)
	IsMember(ctx context.Context, journalID, userID int64) (bool, error)
}

type SubmissionStore interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetByID(ctx context.Context, id int64) (*model.Submission, error)
	// Lock takes a row lock on the submission for the rest of the transaction.
	Lock(ctx context.Context, id int64) error
}

// ParticipantStore is the stage assignment ledger.
type ParticipantStore interface {
	// Create returns ErrAlreadyExists when the (submission, stage, user, role) tuple is taken.
	Create(ctx context.Context, p *model.Participant) error
	UpdatePermissions(ctx context.Context, params UpdatePermissionsParams) ([]model.Participant, error)
	Delete(ctx context.Context, submissionID int64, stage model.Stage, userID int64, role model.Role) error
	ListBySubmission(ctx context.Context, submissionID int64) ([]model.Participant, error)
}

type UpdatePermissionsParams struct {
	RecommendOnly     *bool
	CanChangeMetadata *bool
	Stage             model.Stage
	SubmissionID      int64
	UserID            int64
}

type QueryStore interface {
	NextSeq(ctx context.Context, submissionID int64, stage model.Stage) (int32, error)
	Create(ctx context.Context, q *model.Query) error
	// AddParticipant records userID at position; listings return participants in position order.
	AddParticipant(ctx context.Context, queryID, userID int64, position int32) error
	AddNote(ctx context.Context, note *model.Note) error
	// GetForUpdate locks the query row. Notes and participants are not loaded.
	GetForUpdate(ctx context.Context, submissionID, queryID int64) (*model.Query, error)
	Get(ctx context.Context, submissionID, queryID int64) (*model.Query, error)
	Touch(ctx context.Context, queryID int64) (time.Time, error)
	// Close returns ErrNotFound when no open query matched.
	Close(ctx context.Context, submissionID, queryID int64) (*model.Query, error)
	List(ctx context.Context, submissionID int64, stage *model.Stage) ([]model.Query, error)
}

type ActivityStore interface {
	// Create reports false when the entry was already recorded.
	Create(ctx context.Context, entry *model.ActivityLog) (bool, error)
	ListBySubmission(ctx context.Context, submissionID int64, limit int32) ([]model.ActivityLog, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) (bool, error)
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int32) ([]model.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error)
}
