package router

import (
	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/internal/http/handler"
)

// SubmissionRouter mounts the workflow routes under /submissions/:submissionId.
func SubmissionRouter(rg *gin.RouterGroup, h *handler.WorkflowHandler) {
	rg.POST("/participants", h.AssignParticipant)
	rg.PATCH("/participants", h.UpdateParticipantPermissions)
	rg.DELETE("/participants", h.RemoveParticipant)
	rg.GET("/participants", h.ListParticipants)

	rg.POST("/queries", h.CreateQuery)
	rg.GET("/queries", h.ListQueries)
	rg.POST("/queries/:queryId/notes", h.ReplyToQuery)
	rg.POST("/queries/:queryId/close", h.CloseQuery)

	rg.GET("/activity", h.ListActivity)
}

func JournalRouter(rg *gin.RouterGroup, h *handler.JournalRoleHandler) {
	rg.GET("/users", h.List)
	rg.POST("/users", h.Add)
	rg.DELETE("/users", h.Remove)
	rg.GET("/directory", h.Directory)
}

func NotificationRouter(rg *gin.RouterGroup, h *handler.NotificationHandler) {
	rg.GET("", h.List)
	rg.POST("/:notificationId/read", h.MarkRead)
}
