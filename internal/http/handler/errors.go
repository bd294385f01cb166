package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/internal/http/middleware"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
)

// Response bodies name the failure text differently per endpoint family.
const (
	errorKey   = "error"
	messageKey = "message"
)

func statusForKind(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindInvalidRoleForStage, service.KindUnknownUser:
		return http.StatusUnprocessableEntity
	case service.KindDuplicateAssignment, service.KindQueryClosed:
		return http.StatusConflict
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// writeError renders err as {ok:false, <key>, code}. Storage failures are
// logged in full and reported with a generic text.
func writeError(c *gin.Context, err error, key string) {
	kind := service.ErrorKind(err)
	status := statusForKind(kind)
	text := err.Error()
	if kind == service.KindStorageFailure {
		slog.ErrorContext(c.Request.Context(), "request failed", "error", err, "route", c.FullPath())
		text = "internal error"
	}
	c.JSON(status, gin.H{"ok": false, key: text, "code": string(kind)})
}

// writeListError is writeError without the code field, for read endpoints.
func writeListError(c *gin.Context, err error, key string) {
	kind := service.ErrorKind(err)
	text := err.Error()
	if kind == service.KindStorageFailure {
		slog.ErrorContext(c.Request.Context(), "request failed", "error", err, "route", c.FullPath())
		text = "internal error"
	}
	c.JSON(statusForKind(kind), gin.H{"ok": false, key: text})
}

func writeBindError(c *gin.Context, err error, key string) {
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, key: err.Error(), "code": string(service.KindValidation)})
}

func requireCaller(c *gin.Context) (model.Caller, bool) {
	caller := middleware.GetCaller(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not authenticated"})
		return model.Caller{}, false
	}
	return *caller, true
}

func idParam(c *gin.Context, name, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":   false,
			key:    "invalid " + name,
			"code": string(service.KindValidation),
		})
		return 0, false
	}
	return id, true
}

func limitQuery(c *gin.Context, key string) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, key: "invalid limit"})
		return 0, false
	}
	return limit, true
}
