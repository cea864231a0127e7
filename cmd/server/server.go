package main

import (
	"time"

	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/internal/infrastructure"
)

// Server owns the infrastructure and HTTP listener for one process.
type Server struct {
	infra *infrastructure.Infrastructure
	http  *httpServer
}

// NewServer assembles infrastructure, modules, and the HTTP server from cfg.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	handler, err := buildHandler(cfg, infra)
	if err != nil {
		return nil, err
	}

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
	)

	return &Server{
		infra: infra,
		http:  newHTTPServer(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start registers every subsystem with the lifecycle coordinator and blocks
// until startup hooks complete.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	if err := s.infra.Lifecycle.WaitForStartup(); err != nil {
		return err
	}

	s.infra.Logger.Info("all subsystems ready")
	return nil
}

// Shutdown stops the service within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	if err := s.infra.Lifecycle.Shutdown(timeout); err != nil {
		return err
	}
	s.infra.Logger.Info("service stopped")
	return nil
}
