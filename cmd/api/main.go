package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/careerpilot/backend/config"
	"github.com/careerpilot/backend/internal/logger"
	"github.com/careerpilot/backend/internal/server"
)

func main() {
	log := logger.New()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize server")
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.WithError(err).Fatal("server error")
		}
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.WithError(err).Fatal("shutdown error")
	}
	log.Info("server stopped")
}
