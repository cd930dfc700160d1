package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/careerpilot/backend/config"
	"github.com/careerpilot/backend/internal/api"
	"github.com/careerpilot/backend/internal/database"
	"github.com/careerpilot/backend/internal/router"
	"github.com/careerpilot/backend/internal/store"
)

// Server owns the HTTP listener and the shared backends behind it.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	cfg    *config.Config
	logger *logrus.Logger
}

// New connects the backends and assembles the route table. Redis and S3 are
// optional: without Redis the write endpoints run unthrottled, without S3
// the snapshot endpoints report unavailable.
func New(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, rate limiting disabled")
		redisClient = nil
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		logger.WithError(err).Warn("object storage unavailable, snapshots disabled")
		s3Config = nil
	}

	handlers := api.NewHandlers(store.New(db), redisClient, s3Config, cfg.JWTSecret, logger)
	engine := router.SetupRouter(handlers)

	return &Server{
		engine: engine,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:         s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.WithField("addr", s.http.Addr).Info("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
