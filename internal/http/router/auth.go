package router

import (
	"github.com/gin-gonic/gin"

	"journalflow.app/editorial/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireSession gin.HandlerFunc) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", requireSession, h.Me)
}
