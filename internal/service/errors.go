package service

import (
	"errors"
	"fmt"

	"journalflow.app/editorial/internal/policy"
)

var (
	// ErrValidation marks a request missing a required field or carrying a malformed value.
	ErrValidation          = errors.New("validation error")
	ErrEmptyMessage        = fmt.Errorf("%w: message must not be empty", ErrValidation)
	ErrInvalidRoleForStage = policy.ErrInvalidRoleForStage
	ErrDuplicateAssignment = errors.New("user already holds this role at this stage")
	ErrUnknownUser         = errors.New("user is not a member of this journal")
	ErrQueryClosed         = errors.New("query is closed")
	ErrForbidden           = errors.New("not permitted")

	ErrNotFound             = errors.New("not found")
	ErrParticipantNotFound  = fmt.Errorf("participant %w", ErrNotFound)
	ErrQueryNotFound        = fmt.Errorf("query %w", ErrNotFound)
	ErrSubmissionNotFound   = fmt.Errorf("submission %w", ErrNotFound)
	ErrJournalNotFound      = fmt.Errorf("journal %w", ErrNotFound)
	ErrJournalRoleNotFound  = fmt.Errorf("journal role %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
)

// Kind is the caller-facing classification of a failed operation.
type Kind string

const (
	KindValidation          Kind = "validation_error"
	KindInvalidRoleForStage Kind = "invalid_role_for_stage"
	KindDuplicateAssignment Kind = "duplicate_assignment"
	KindUnknownUser         Kind = "unknown_user"
	KindNotFound            Kind = "not_found"
	KindQueryClosed         Kind = "query_closed"
	KindForbidden           Kind = "forbidden"
	KindStorageFailure      Kind = "storage_failure"
)

// ErrorKind classifies err. Anything unrecognised is a storage failure.
func ErrorKind(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInvalidRoleForStage):
		return KindInvalidRoleForStage
	case errors.Is(err, ErrDuplicateAssignment):
		return KindDuplicateAssignment
	case errors.Is(err, ErrUnknownUser):
		return KindUnknownUser
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrQueryClosed):
		return KindQueryClosed
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	}
	return KindStorageFailure
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
