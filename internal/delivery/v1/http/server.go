package http

import (
	"context"
	"net/http"

	"github.com/ananas-shop/commerce-backend/internal/cfg"
)

// Server оборачивает http.Server с таймаутами из конфигурации.
// Остановка делается через Stop, чтобы дождаться активных запросов.
type Server struct {
	httpServer *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{httpServer: srv}
}

// Run блокируется до остановки сервера.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
