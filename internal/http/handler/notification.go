package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/internal/http/dto"
	"journalflow.app/editorial/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	limit, ok := limitQuery(c, errorKey)
	if !ok {
		return
	}
	unreadOnly := c.Query("unread") == "true"

	ns, err := h.notifications.List(c.Request.Context(), caller, unreadOnly, limit)
	if err != nil {
		writeListError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationsResponse(ns))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	notificationID, ok := idParam(c, "notificationId", errorKey)
	if !ok {
		return
	}

	n, err := h.notifications.MarkRead(c.Request.Context(), caller, notificationID)
	if err != nil {
		writeError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "notification": dto.ToNotificationResponse(n)})
}
