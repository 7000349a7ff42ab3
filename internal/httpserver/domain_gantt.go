package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	ganttHTTP "gantt-task-board/internal/gantt/delivery/http"
	"gantt-task-board/internal/middleware"
)

// setupGanttDomain wires the gantt domain's HTTP handler and routes.
// The repository and use case are built in main and injected through
// Config, so the server stays transport-only.
func (srv HTTPServer) setupGanttDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := ganttHTTP.New(srv.l, srv.ganttUC)

	// Registers /api/v1/gantt/sessions
	ganttHTTP.RegisterRoutes(api.Group("/gantt"), h, mw)

	srv.l.Infof(ctx, "Gantt domain registered")
	return nil
}
