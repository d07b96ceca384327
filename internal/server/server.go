// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the pipeline over HTTP: document upload, direct
// text submission, the session chat endpoint, and a health check.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/pipeline"
	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/pkg/types"
)

// Server wires the pipeline and chat provider into a gin engine.
type Server struct {
	cfg  types.Config
	pipe *pipeline.Pipeline
	gen  provider.TextGenerator
	log  *zap.SugaredLogger

	engine *gin.Engine
	http   *http.Server
}

// New builds the HTTP server around a pipeline and a text provider.
func New(cfg types.Config, pipe *pipeline.Pipeline, gen provider.TextGenerator, log *zap.SugaredLogger) *Server {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	s := &Server{cfg: cfg, pipe: pipe, gen: gen, log: log}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))
	engine.Use(cors.Default())
	engine.MaxMultipartMemory = cfg.Upload.MaxFileSize

	api := engine.Group("/api")
	{
		api.POST("/process", s.handleProcess)
		api.POST("/process-text", s.handleProcessText)
		api.POST("/chat", s.handleChat)
		api.GET("/health", s.handleHealth)
	}

	s.engine = engine
	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: engine,
	}
	return s
}

// Engine exposes the router for handler tests.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("http server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	s.log.Infow("shutting down http server")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return <-errCh
}

// requestLogger logs one line per request: method, path, status, latency.
func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
