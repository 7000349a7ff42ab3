package http

import (
	"github.com/gin-gonic/gin"

	"gantt-task-board/internal/gantt"
	"gantt-task-board/pkg/log"
)

// Handler is the public interface for the gantt HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	Table(c *gin.Context)
	ReplaceRows(c *gin.Context)
	DeleteRow(c *gin.Context)
	Reload(c *gin.Context)
	Upload(c *gin.Context)
	Export(c *gin.Context)
	Scene(c *gin.Context)
	ToggleLegend(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc gantt.UseCase
}

// New creates a new HTTP handler for the gantt domain.
func New(l log.Logger, uc gantt.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
