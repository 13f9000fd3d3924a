package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fittogether/backend/config"
	"github.com/fittogether/backend/internal/api"
	"github.com/fittogether/backend/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a server with all routes registered
func New(cfg *config.Config, db *gorm.DB, s3Config *config.S3Config) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	api.RegisterRoutes(router, db, cfg, s3Config)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start runs the server until it fails or is shut down
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
