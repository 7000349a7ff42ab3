package http

import (
	"github.com/gin-gonic/gin"

	"gantt-task-board/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Upload and export hit the filesystem, so they carry the rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id/tasks", h.Table)
		sessions.PUT("/:id/tasks", h.ReplaceRows)
		sessions.DELETE("/:id/tasks/:index", h.DeleteRow)
		sessions.POST("/:id/reload", h.Reload)
		sessions.POST("/:id/upload", mw.RateLimit(), h.Upload)
		sessions.POST("/:id/export", mw.RateLimit(), h.Export)
		sessions.GET("/:id/scene", h.Scene)
		sessions.POST("/:id/legend/toggle", h.ToggleLegend)
	}
}
