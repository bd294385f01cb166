package store

import (
	"journalflow.app/editorial/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Journals() JournalStore {
	return newJournalStore(s.queries)
}

func (s *Stores) JournalRoles() JournalRoleStore {
	return newJournalRoleStore(s.queries)
}

func (s *Stores) Submissions() SubmissionStore {
	return newSubmissionStore(s.queries)
}

func (s *Stores) Participants() ParticipantStore {
	return newParticipantStore(s.queries)
}

func (s *Stores) Queries() QueryStore {
	return newQueryStore(s.queries)
}

func (s *Stores) Activity() ActivityStore {
	return newActivityStore(s.queries)
}

func (s *Stores) Notifications() NotificationStore {
	return newNotificationStore(s.queries)
}
