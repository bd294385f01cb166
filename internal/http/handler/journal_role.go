package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/internal/http/dto"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
)

type JournalRoleHandler struct {
	roles service.JournalRoleService
}

func NewJournalRoleHandler(roles service.JournalRoleService) *JournalRoleHandler {
	return &JournalRoleHandler{roles: roles}
}

func (h *JournalRoleHandler) List(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	journalID, ok := idParam(c, "journalId", errorKey)
	if !ok {
		return
	}

	users, err := h.roles.List(c.Request.Context(), caller, journalID)
	if err != nil {
		writeListError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.JournalUsersResponse{OK: true, Users: dto.ToJournalUserResponses(users)})
}

func (h *JournalRoleHandler) Add(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	journalID, ok := idParam(c, "journalId", errorKey)
	if !ok {
		return
	}

	var req dto.JournalRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, errorKey)
		return
	}

	if _, err := h.roles.Add(c.Request.Context(), caller, journalID, req.UserID, model.JournalRole(req.Role)); err != nil {
		writeError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{OK: true, Message: "role granted"})
}

func (h *JournalRoleHandler) Remove(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	journalID, ok := idParam(c, "journalId", errorKey)
	if !ok {
		return
	}

	var req dto.JournalRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, errorKey)
		return
	}

	if err := h.roles.Remove(c.Request.Context(), caller, journalID, req.UserID, model.JournalRole(req.Role)); err != nil {
		writeError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{OK: true, Message: "role revoked"})
}

// Directory lists the journal's users for assignment pickers.
func (h *JournalRoleHandler) Directory(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	journalID, ok := idParam(c, "journalId", errorKey)
	if !ok {
		return
	}

	users, err := h.roles.Directory(c.Request.Context(), caller, journalID)
	if err != nil {
		writeListError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.JournalUsersResponse{OK: true, Users: dto.ToJournalUserResponses(users)})
}
