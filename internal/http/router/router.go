package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/internal/http/handler"
	"journalflow.app/editorial/internal/http/middleware"
	"journalflow.app/editorial/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	// MetricsHandler is served on /metrics when set.
	MetricsHandler http.Handler
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	requireSession := middleware.RequireSession(services.Auth())

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireSession)

	v1 := router.Group("/api/v1", requireSession)
	{
		workflowHandler := handler.NewWorkflowHandler(services.Workflow())
		SubmissionRouter(v1.Group("/submissions/:submissionId"), workflowHandler)

		journalHandler := handler.NewJournalRoleHandler(services.JournalRoles())
		JournalRouter(v1.Group("/journals/:journalId"), journalHandler)

		notificationHandler := handler.NewNotificationHandler(services.Notifications())
		NotificationRouter(v1.Group("/notifications"), notificationHandler)
	}
}
