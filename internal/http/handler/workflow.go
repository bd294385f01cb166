package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/internal/http/dto"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
)

// WorkflowHandler exposes participant assignment and query threads of a submission.
type WorkflowHandler struct {
	workflow service.WorkflowService
}

func NewWorkflowHandler(workflow service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflow: workflow}
}

func (h *WorkflowHandler) AssignParticipant(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", errorKey)
	if !ok {
		return
	}

	var req dto.AssignParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, errorKey)
		return
	}

	p, err := h.workflow.AssignParticipant(c.Request.Context(), caller, service.AssignParams{
		Stage:             model.Stage(req.Stage),
		Role:              model.Role(req.Role),
		SubmissionID:      submissionID,
		UserID:            req.UserID,
		RecommendOnly:     req.RecommendOnly,
		CanChangeMetadata: req.CanChangeMetadata,
	})
	if err != nil {
		writeError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusCreated, dto.AssignParticipantResponse{
		OK:          true,
		Message:     "participant assigned",
		Participant: dto.ToParticipantResponse(p),
	})
}

func (h *WorkflowHandler) UpdateParticipantPermissions(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", errorKey)
	if !ok {
		return
	}

	var req dto.UpdatePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, errorKey)
		return
	}

	updated, err := h.workflow.UpdateParticipantPermissions(c.Request.Context(), caller, service.UpdatePermissionsParams{
		RecommendOnly:     req.RecommendOnly,
		CanChangeMetadata: req.CanChangeMetadata,
		Stage:             model.Stage(req.Stage),
		SubmissionID:      submissionID,
		UserID:            req.UserID,
	})
	if err != nil {
		writeError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.ParticipantsResponse{
		OK:           true,
		Participants: dto.ToParticipantResponses(updated),
	})
}

func (h *WorkflowHandler) RemoveParticipant(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", errorKey)
	if !ok {
		return
	}

	var req dto.RemoveParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, errorKey)
		return
	}

	err := h.workflow.RemoveParticipant(c.Request.Context(), caller, submissionID,
		model.Stage(req.Stage), req.UserID, model.Role(req.Role))
	if err != nil {
		writeError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{OK: true, Message: "participant removed"})
}

func (h *WorkflowHandler) ListParticipants(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", errorKey)
	if !ok {
		return
	}

	participants, err := h.workflow.ListParticipants(c.Request.Context(), caller, submissionID)
	if err != nil {
		writeListError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.ParticipantsResponse{
		OK:           true,
		Participants: dto.ToParticipantResponses(participants),
	})
}

func (h *WorkflowHandler) CreateQuery(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", messageKey)
	if !ok {
		return
	}

	var req dto.CreateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, messageKey)
		return
	}
	participantIDs, err := req.ParseParticipantIDs()
	if err != nil {
		writeBindError(c, err, messageKey)
		return
	}

	q, err := h.workflow.CreateQuery(c.Request.Context(), caller, service.NewQueryInput{
		Title:          req.Title,
		Stage:          model.Stage(req.Stage),
		Message:        req.Message,
		ParticipantIDs: participantIDs,
		SubmissionID:   submissionID,
	})
	if err != nil {
		writeError(c, err, messageKey)
		return
	}

	c.JSON(http.StatusCreated, dto.QueryMutationResponse{
		OK:      true,
		Message: "query created",
		Query:   dto.ToQueryResponse(q),
	})
}

func (h *WorkflowHandler) ReplyToQuery(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", messageKey)
	if !ok {
		return
	}
	queryID, ok := idParam(c, "queryId", messageKey)
	if !ok {
		return
	}

	var req dto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, messageKey)
		return
	}

	note, err := h.workflow.ReplyToQuery(c.Request.Context(), caller, service.ReplyInput{
		SubmissionID: submissionID,
		QueryID:      queryID,
		Title:        req.Title,
		Message:      req.Contents,
	})
	if err != nil {
		writeError(c, err, messageKey)
		return
	}

	c.JSON(http.StatusCreated, dto.NoteMutationResponse{
		OK:      true,
		Message: "reply added",
		Note:    dto.ToNoteResponse(note),
	})
}

func (h *WorkflowHandler) CloseQuery(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", messageKey)
	if !ok {
		return
	}
	queryID, ok := idParam(c, "queryId", messageKey)
	if !ok {
		return
	}

	q, changed, err := h.workflow.CloseQuery(c.Request.Context(), caller, submissionID, queryID)
	if err != nil {
		writeError(c, err, messageKey)
		return
	}

	message := "query closed"
	if !changed {
		message = "query already closed"
	}
	c.JSON(http.StatusOK, dto.QueryMutationResponse{
		OK:      true,
		Message: message,
		Query:   dto.ToQueryResponse(q),
	})
}

func (h *WorkflowHandler) ListQueries(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", messageKey)
	if !ok {
		return
	}

	var stage *model.Stage
	if raw := c.Query("stage"); raw != "" {
		s := model.Stage(raw)
		stage = &s
	}

	qs, err := h.workflow.ListQueries(c.Request.Context(), caller, submissionID, stage)
	if err != nil {
		writeListError(c, err, messageKey)
		return
	}

	c.JSON(http.StatusOK, dto.ToQueriesResponse(qs))
}

func (h *WorkflowHandler) ListActivity(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	submissionID, ok := idParam(c, "submissionId", errorKey)
	if !ok {
		return
	}
	limit, ok := limitQuery(c, errorKey)
	if !ok {
		return
	}

	logs, err := h.workflow.ListActivity(c.Request.Context(), caller, submissionID, limit)
	if err != nil {
		writeListError(c, err, errorKey)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(logs))
}
