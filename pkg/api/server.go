// Package api exposes the ops surface: health, the inbound proxy, and
// read/replay endpoints over events, the dead letter queue, and schedules.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/database"
	"github.com/relayforge/relayforge/pkg/delivery"
	"github.com/relayforge/relayforge/pkg/ingest"
	"github.com/relayforge/relayforge/pkg/retry"
	"github.com/relayforge/relayforge/pkg/scheduler"
	"github.com/relayforge/relayforge/pkg/version"
)

// Server hosts the HTTP surface.
type Server struct {
	db           *database.Client
	integrations *config.IntegrationRegistry
	engine       *delivery.Engine
	events       *ingest.Store
	dlq          *retry.Store
	replayer     *retry.Worker
	schedules    *scheduler.Service

	httpServer *http.Server
}

// NewServer wires the ops API.
func NewServer(
	db *database.Client,
	integrations *config.IntegrationRegistry,
	engine *delivery.Engine,
	events *ingest.Store,
	dlq *retry.Store,
	replayer *retry.Worker,
	schedules *scheduler.Service,
) *Server {
	return &Server{
		db:           db,
		integrations: integrations,
		engine:       engine,
		events:       events,
		dlq:          dlq,
		replayer:     replayer,
		schedules:    schedules,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/events", s.listEventsHandler)
		v1.GET("/events/:id", s.getEventHandler)

		v1.GET("/dlq", s.listDLQHandler)
		v1.GET("/dlq/:id", s.getDLQHandler)
		v1.POST("/dlq/:id/replay", s.replayDLQHandler)

		v1.GET("/schedules", s.listSchedulesHandler)
		v1.POST("/schedules/:id/cancel", s.cancelScheduleHandler)
	}

	// Inbound proxy. The wildcard carries the client-facing path that
	// integrations register as proxy_path.
	r.Any("/proxy/*path", s.proxyHandler)

	return r
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("API server starting", "addr", addr, "version", version.Full())
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
