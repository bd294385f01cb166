package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"journalflow.app/editorial/internal/http/handler"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
)

var _ = Describe("JournalRoleHandler", func() {
	var (
		router *gin.Engine
		svc    *mockJournalRoleService
	)

	BeforeEach(func() {
		svc = &mockJournalRoleService{}
		router = gin.New()
		router.Use(withCaller(&model.Caller{UserID: 1, SiteAdmin: true}))
		h := handler.NewJournalRoleHandler(svc)
		j := router.Group("/journals/:journalId")
		j.GET("/users", h.List)
		j.POST("/users", h.Add)
		j.DELETE("/users", h.Remove)
		j.GET("/directory", h.Directory)
	})

	It("lists users grouped with their grants", func() {
		svc.listFn = func(_ context.Context, _ model.Caller, journalID int64) ([]model.JournalUser, error) {
			Expect(journalID).To(Equal(int64(10)))
			return []model.JournalUser{{
				UserID: 2,
				Name:   "Ravi",
				Roles:  []model.JournalRoleGrant{{Role: model.JournalRoleReviewer}, {Role: model.JournalRoleAuthor}},
			}}, nil
		}

		w := doJSON(router, http.MethodGet, "/journals/10/users", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		users := decode(w)["users"].([]any)
		Expect(users).To(HaveLen(1))
		user := users[0].(map[string]any)
		Expect(user["user_id"]).To(Equal("2"))
		Expect(user["roles"]).To(HaveLen(2))
	})

	It("grants a role", func() {
		var gotRole model.JournalRole
		svc.addFn = func(_ context.Context, _ model.Caller, journalID, userID int64, role model.JournalRole) (*model.JournalRoleAssignment, error) {
			gotRole = role
			return &model.JournalRoleAssignment{JournalID: journalID, UserID: userID, Role: role}, nil
		}

		w := doJSON(router, http.MethodPost, "/journals/10/users", map[string]any{
			"user_id": "2",
			"role":    "section_editor",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotRole).To(Equal(model.JournalRoleSectionEditor))
		resp := decode(w)
		Expect(resp["ok"]).To(BeTrue())
		Expect(resp["message"]).To(Equal("role granted"))
	})

	It("rejects an unknown user", func() {
		svc.addFn = func(context.Context, model.Caller, int64, int64, model.JournalRole) (*model.JournalRoleAssignment, error) {
			return nil, service.ErrUnknownUser
		}

		w := doJSON(router, http.MethodPost, "/journals/10/users", map[string]any{
			"user_id": "404",
			"role":    "reviewer",
		})

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		Expect(decode(w)["code"]).To(Equal("unknown_user"))
	})

	It("returns 404 when revoking a role the user does not hold", func() {
		svc.removeFn = func(context.Context, model.Caller, int64, int64, model.JournalRole) error {
			return service.ErrJournalRoleNotFound
		}

		w := doJSON(router, http.MethodDelete, "/journals/10/users", map[string]any{
			"user_id": "2",
			"role":    "reviewer",
		})

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 403 from the directory for non-editorial callers", func() {
		svc.directoryFn = func(context.Context, model.Caller, int64) ([]model.JournalUser, error) {
			return nil, service.ErrForbidden
		}

		w := doJSON(router, http.MethodGet, "/journals/10/directory", nil)

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})
})
