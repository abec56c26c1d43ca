package main

import (
	"net/http"

	"github.com/hibiken/asynq"

	"songblog-backend/internal/infrastructure/queue"
	"songblog-backend/internal/infrastructure/queue/handlers"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	keepalive *handlers.KeepaliveHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(client *http.Client) *HandlerRegistry {
	return &HandlerRegistry{
		keepalive: handlers.NewKeepaliveHandler(client),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeSiteKeepalive, h.keepalive.ProcessTask)
}
