package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"journalflow.app/editorial/core/config"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
	"journalflow.app/editorial/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		ctx      context.Context
		db       *memDB
		users    *mockUserStore
		sessions *mockSessionStore
		svc      service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		db.addMember(journalID, editorID, "Edith", model.JournalRoleEditor)
		db.addMember(journalID, editorID, "Edith", model.JournalRoleManager)
		users = &mockUserStore{}
		sessions = &mockSessionStore{
			getValidFn: func(_ context.Context, id int64) (*model.Session, error) {
				return &model.Session{ID: id, UserID: editorID, ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
		}
		svc = service.NewAuthService(users, sessions, db.JournalRoles(), config.WorkOSConfig{
			APIKey: "sk_test", ClientID: "client_test", RedirectURI: "http://localhost:8080/auth/callback",
		})
	})

	Describe("ValidateSession", func() {
		It("builds the caller with journal roles", func() {
			users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Name: "Edith", Email: "edith@example.org"}, nil
			}

			caller, err := svc.ValidateSession(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(caller.UserID).To(Equal(editorID))
			Expect(caller.Name).To(Equal("Edith"))
			Expect(caller.Roles).To(HaveLen(2))
			Expect(caller.CanManageJournal(journalID)).To(BeTrue())
		})

		It("carries the site admin flag", func() {
			users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, IsSiteAdmin: true}, nil
			}

			caller, err := svc.ValidateSession(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(caller.SiteAdmin).To(BeTrue())
		})

		It("reports expired sessions", func() {
			sessions.getValidFn = func(context.Context, int64) (*model.Session, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.ValidateSession(ctx, 1)
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})

		It("reports deleted users", func() {
			users.getByIDFn = func(context.Context, int64) (*model.User, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.ValidateSession(ctx, 1)
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})

	Describe("GetAuthorizationURL", func() {
		It("points at AuthKit with the state", func() {
			url, err := svc.GetAuthorizationURL("state-123")

			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(ContainSubstring("client_test"))
			Expect(url).To(ContainSubstring("state-123"))
		})
	})
})
