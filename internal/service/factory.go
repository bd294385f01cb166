package service

import (
	"journalflow.app/editorial/core/config"
	"journalflow.app/editorial/internal/cache"
	"journalflow.app/editorial/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	cache     cache.Cache
	publisher EventPublisher
	recorder  OperationRecorder
	cfg       config.Config
}

type ServicesDeps struct {
	Stores    *store.Stores
	TxRunner  TxRunner
	Cache     cache.Cache       // optional
	Publisher EventPublisher    // optional
	Recorder  OperationRecorder // optional
	Config    config.Config
}

func NewServices(deps ServicesDeps) *Services {
	return &Services{
		stores:    deps.Stores,
		txRunner:  deps.TxRunner,
		cache:     deps.Cache,
		publisher: deps.Publisher,
		recorder:  deps.Recorder,
		cfg:       deps.Config,
	}
}

func (s *Services) Directory() DirectoryService {
	return NewDirectoryService(s.stores.JournalRoles(), s.cache, s.cfg.Directory.CacheTTL)
}

func (s *Services) Participants() ParticipantService {
	return NewParticipantService(s.stores.Submissions(), s.stores.Participants(), s.Directory())
}

func (s *Services) Queries() QueryService {
	return NewQueryService(s.txRunner, s.stores.Queries(), s.stores.Submissions(), s.Directory())
}

func (s *Services) Workflow() WorkflowService {
	return NewWorkflowService(
		s.stores.Submissions(),
		s.stores.Activity(),
		s.Participants(),
		s.Queries(),
		s.publisher,
		s.recorder,
	)
}

func (s *Services) JournalRoles() JournalRoleService {
	return NewJournalRoleService(s.stores.Journals(), s.stores.Users(), s.stores.JournalRoles(), s.Directory())
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Users(),
		s.stores.Sessions(),
		s.stores.JournalRoles(),
		s.cfg.WorkOS,
	)
}

func (s *Services) Notifications() NotificationService {
	return NewNotificationService(s.stores.Notifications())
}
