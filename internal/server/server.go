package server

import (
	"context"
	"net/http"

	"github.com/shared-city/backend/internal/config"
)

// maxHeaderBytes bounds request headers; bodies are bounded per handler.
const maxHeaderBytes = 1 << 20

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.HttpServer.Port,
			Handler:           handler,
			ReadTimeout:       cfg.HttpServer.Timeout,
			ReadHeaderTimeout: cfg.HttpServer.Timeout,
			WriteTimeout:      cfg.Assistant.Timeout + cfg.HttpServer.Timeout,
			IdleTimeout:       cfg.HttpServer.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
	}
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
