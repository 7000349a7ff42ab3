package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	appConfig "gantt-task-board/config"
	"gantt-task-board/internal/gantt"
	"gantt-task-board/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	appCfg      *appConfig.Config

	// Gantt domain
	ganttUC gantt.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *appConfig.Config

	// Gantt domain
	GanttUseCase gantt.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		appCfg:      cfg.AppConfig,
		ganttUC:     cfg.GanttUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.appCfg == nil {
		return errors.New("app config is required")
	}
	if srv.ganttUC == nil {
		return errors.New("gantt usecase is required")
	}
	return nil
}
