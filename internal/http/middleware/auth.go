package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/common/logger"
	"journalflow.app/editorial/internal/model"
	"journalflow.app/editorial/internal/service"
)

type contextKey string

const (
	SessionCookieName = "editorial_session"
	SessionHeaderName = "X-Session-ID"
	callerGinKey      = "caller"
)

const (
	callerContextKey    contextKey = "caller"
	sessionIDContextKey contextKey = "session_id"
)

func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := getSessionID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not authenticated"})
			return
		}

		caller, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				ClearSessionCookie(c)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to validate session"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), callerContextKey, caller)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &caller.UserID})
		c.Request = c.Request.WithContext(ctx)
		c.Set(callerGinKey, caller)

		c.Next()
	}
}

// GetCaller returns the authenticated caller, or nil outside RequireSession.
func GetCaller(c *gin.Context) *model.Caller {
	if v, ok := c.Get(callerGinKey); ok {
		if caller, ok := v.(*model.Caller); ok {
			return caller
		}
	}
	caller, _ := c.Request.Context().Value(callerContextKey).(*model.Caller)
	return caller
}

// SetCaller attaches caller to the request as RequireSession would.
func SetCaller(c *gin.Context, caller *model.Caller) {
	c.Set(callerGinKey, caller)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), callerContextKey, caller))
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

func getSessionID(c *gin.Context) (int64, error) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return strconv.ParseInt(cookie, 10, 64)
	}
	header := c.GetHeader(SessionHeaderName)
	if header == "" {
		return 0, http.ErrNoCookie
	}
	return strconv.ParseInt(header, 10, 64)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}
