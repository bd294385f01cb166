package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"journalflow.app/editorial/internal/http/handler"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
)

var _ = Describe("NotificationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockNotificationService
	)

	BeforeEach(func() {
		svc = &mockNotificationService{}
		router = gin.New()
		router.Use(withCaller(&model.Caller{UserID: 3}))
		h := handler.NewNotificationHandler(svc)
		router.GET("/notifications", h.List)
		router.POST("/notifications/:notificationId/read", h.MarkRead)
	})

	It("lists unread notifications for the caller", func() {
		svc.listFn = func(_ context.Context, caller model.Caller, unreadOnly bool, limit int) ([]model.Notification, error) {
			Expect(caller.UserID).To(Equal(int64(3)))
			Expect(unreadOnly).To(BeTrue())
			Expect(limit).To(Equal(0))
			queryID := int64(900)
			return []model.Notification{{
				ID:           7,
				UserID:       3,
				SubmissionID: 100,
				QueryID:      &queryID,
				Kind:         model.NotificationKindQueryOpened,
				Message:      "Edith opened a query at review",
			}}, nil
		}

		w := doJSON(router, http.MethodGet, "/notifications?unread=true", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		items := decode(w)["notifications"].([]any)
		Expect(items).To(HaveLen(1))
		n := items[0].(map[string]any)
		Expect(n["query_id"]).To(Equal("900"))
		Expect(n["kind"]).To(Equal("query_opened"))
	})

	It("marks a notification read", func() {
		svc.markReadFn = func(_ context.Context, _ model.Caller, id int64) (*model.Notification, error) {
			now := time.Now()
			return &model.Notification{ID: id, ReadAt: &now}, nil
		}

		w := doJSON(router, http.MethodPost, "/notifications/7/read", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		n := decode(w)["notification"].(map[string]any)
		Expect(n["id"]).To(Equal("7"))
		Expect(n).To(HaveKey("read_at"))
	})

	It("returns 404 for another user's notification", func() {
		svc.markReadFn = func(context.Context, model.Caller, int64) (*model.Notification, error) {
			return nil, service.ErrNotificationNotFound
		}

		w := doJSON(router, http.MethodPost, "/notifications/8/read", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
