package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/internal/http/dto"
	"journalflow.app/editorial/internal/http/middleware"
	"journalflow.app/editorial/internal/service"
)

const (
	stateCookieName = "editorial_oauth_state"
	sessionMaxAge   = 7 * 24 * 60 * 60
)

type AuthHandler struct {
	authService  service.AuthService
	dashboardURL string
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, dashboardURL string, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		dashboardURL: dashboardURL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to initiate login"})
		return
	}

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to initiate login"})
		return
	}

	c.SetCookie(
		stateCookieName,
		state,
		600,
		"/",
		"",
		h.isProduction,
		true,
	)

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	state := c.Query("state")

	if errorParam := c.Query("error"); errorParam != "" {
		slog.WarnContext(ctx, "OAuth error", "error", errorParam, "description", c.Query("error_description"))
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error="+errorParam)
		return
	}

	storedState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != storedState {
		slog.WarnContext(ctx, "state mismatch", "got", state)
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=invalid_state")
		return
	}

	h.clearCookie(c, stateCookieName)

	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=no_code")
		return
	}

	user, session, err := h.authService.HandleCallback(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to handle callback", "error", err)
		if errors.Is(err, service.ErrInvalidCode) {
			c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=invalid_code")
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error=callback_failed")
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		strconv.FormatInt(session.ID, 10),
		sessionMaxAge,
		"/",
		"",
		h.isProduction,
		true,
	)

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "email", user.Email)

	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"/editorial")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sessionID, ok := sessionIDFromRequest(c); ok {
		if err := h.authService.Logout(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
		}
	}

	h.clearCookie(c, middleware.SessionCookieName)

	c.JSON(http.StatusOK, dto.MessageResponse{OK: true, Message: "logged out"})
}

// Me must run behind middleware.RequireSession.
func (h *AuthHandler) Me(c *gin.Context) {
	caller := middleware.GetCaller(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMeResponse(caller))
}

func (h *AuthHandler) clearCookie(c *gin.Context, name string) {
	c.SetCookie(
		name,
		"",
		-1,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func sessionIDFromRequest(c *gin.Context) (int64, bool) {
	raw, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || raw == "" {
		raw = c.GetHeader(middleware.SessionHeaderName)
	}
	sessionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || sessionID <= 0 {
		return 0, false
	}
	return sessionID, true
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
