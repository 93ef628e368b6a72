package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relayforge/relayforge/pkg/version"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	db := s.db.Health(c.Request.Context())

	status := "healthy"
	code := http.StatusOK
	if !db.Reachable {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":       status,
		"version":      version.Full(),
		"database":     db,
		"integrations": s.integrations.Len(),
	})
}
