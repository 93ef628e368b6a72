package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relayforge/relayforge/pkg/retry"
)

// listDLQHandler handles GET /api/v1/dlq.
func (s *Server) listDLQHandler(c *gin.Context) {
	orgID, limit, ok := orgAndLimit(c)
	if !ok {
		return
	}

	entries, err := s.dlq.ListForOrg(c.Request.Context(), orgID, limit)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// getDLQHandler handles GET /api/v1/dlq/:id.
func (s *Server) getDLQHandler(c *gin.Context) {
	entry, err := s.dlq.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// replayDLQHandler handles POST /api/v1/dlq/:id/replay. The replay runs
// synchronously so the operator sees the outcome in the response.
func (s *Server) replayDLQHandler(c *gin.Context) {
	id := c.Param("id")

	if err := s.replayer.Replay(c.Request.Context(), id); err != nil {
		if errors.Is(err, retry.ErrAlreadyReplayed) {
			respondError(c, http.StatusConflict, CategoryConflict, err.Error())
			return
		}
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dlq_id": id, "status": "replayed"})
}
