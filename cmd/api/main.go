package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gantt-task-board/config"
	"gantt-task-board/internal/gantt/repository/excel"
	"gantt-task-board/internal/gantt/usecase"
	"gantt-task-board/internal/httpserver"
	"gantt-task-board/internal/session"
	"gantt-task-board/pkg/log"
)

// @title       Gantt Task Board API
// @description Session-based Gantt chart engine: spreadsheet-backed task tables, dependency locks, and render-ready chart scenes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Gantt Task Board...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Source workbook: %s", cfg.Gantt.SourcePath)

	// 3. Gantt domain
	repo := excel.New(logger, cfg.Gantt.SheetName)

	store, err := session.NewStore(cfg.Sessions.Max)
	if err != nil {
		logger.Errorf(ctx, "Failed to create session store: %v", err)
		return
	}

	ganttUC := usecase.New(logger, repo, store, cfg.Gantt.SourcePath)

	// 4. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		AppConfig:    cfg,
		GanttUseCase: ganttUC,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server stopped: %v", err)
	}
}
