package middleware

import (
	"gantt-task-board/config"
	"gantt-task-board/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	clients *clientLimiters
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		clients: newClientLimiters(cfg.RateLimit.PerMin),
	}
}
