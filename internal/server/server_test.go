package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/backend/config"
)

func TestShutdownBeforeStart(t *testing.T) {
	s := &Server{logger: logrus.New()}
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestStartAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	s := &Server{
		engine: engine,
		cfg:    &config.Config{ServerHost: "127.0.0.1", ServerPort: "0"},
		logger: logger,
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Start()
	}()

	// give the listener a moment to bind
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}
