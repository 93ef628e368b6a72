package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// orgAndLimit parses the common org_id and limit query parameters. org_id is
// required on list endpoints to keep tenants from reading each other's data.
func orgAndLimit(c *gin.Context) (string, int, bool) {
	orgID := c.Query("org_id")
	if orgID == "" {
		respondError(c, http.StatusBadRequest, CategoryValidation, "org_id is required")
		return "", 0, false
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			respondError(c, http.StatusBadRequest, CategoryValidation, "limit must be between 1 and 500")
			return "", 0, false
		}
		limit = n
	}
	return orgID, limit, true
}

// listEventsHandler handles GET /api/v1/events.
func (s *Server) listEventsHandler(c *gin.Context) {
	orgID, limit, ok := orgAndLimit(c)
	if !ok {
		return
	}

	events, err := s.events.ListForOrg(c.Request.Context(), orgID, limit)
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// getEventHandler handles GET /api/v1/events/:id.
func (s *Server) getEventHandler(c *gin.Context) {
	event, err := s.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
