package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"study-portal/cmd/api/di"
	"study-portal/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	Gin    *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		Gin: SetupGinServer(
			c.PortalHandler,
			c.HealthHandler,
			c.RateLimiter,
			c.Templates,
			":"+cfg.App.HTTPPort,
			l,
		),
	}
}

// Start serves HTTP until the server is shut down.
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.Gin.Addr))

	if err := s.Gin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
