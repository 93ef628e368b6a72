package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relayforge/relayforge/pkg/scheduler"
)

// listSchedulesHandler handles GET /api/v1/schedules.
func (s *Server) listSchedulesHandler(c *gin.Context) {
	orgID, limit, ok := orgAndLimit(c)
	if !ok {
		return
	}

	entries, err := s.schedules.ListForOrg(c.Request.Context(), orgID, limit)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": entries, "count": len(entries)})
}

// cancelScheduleRequest is the body for POST /api/v1/schedules/:id/cancel.
type cancelScheduleRequest struct {
	CancelledBy string `json:"cancelled_by" binding:"required"`
	Reason      string `json:"reason"`
}

// cancelScheduleHandler handles POST /api/v1/schedules/:id/cancel.
func (s *Server) cancelScheduleHandler(c *gin.Context) {
	id := c.Param("id")

	var req cancelScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CategoryValidation, "cancelled_by is required")
		return
	}

	if err := s.schedules.Cancel(c.Request.Context(), id, req.CancelledBy, req.Reason); err != nil {
		if errors.Is(err, scheduler.ErrNotCancellable) {
			respondError(c, http.StatusConflict, CategoryConflict, err.Error())
			return
		}
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule_id": id, "status": "cancelled"})
}
