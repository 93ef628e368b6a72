package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/relayforge/relayforge/pkg/delivery"
)

// maxProxyBodyBytes caps the request body accepted on the proxy route.
const maxProxyBodyBytes = 1 << 20 // 1 MiB

// proxyHandler handles /proxy/*path: forwards the client request through the
// inbound integration registered for the path and relays the upstream
// response.
func (s *Server) proxyHandler(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" {
		respondError(c, http.StatusBadRequest, CategoryValidation, "proxy path is required")
		return
	}

	in, err := s.integrations.ByProxyPath(path)
	if err != nil {
		respondError(c, http.StatusNotFound, CategoryNotFound, "no inbound integration for path "+path)
		return
	}

	orgID := c.GetHeader("X-Org-ID")
	if orgID == "" {
		orgID = in.OrgID
	}
	if orgID != in.OrgID {
		respondError(c, http.StatusNotFound, CategoryNotFound, "no inbound integration for path "+path)
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxProxyBodyBytes+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, CategoryValidation, "failed to read request body")
		return
	}
	if len(body) > maxProxyBodyBytes {
		respondError(c, http.StatusRequestEntityTooLarge, CategoryValidation, "request body exceeds 1 MiB")
		return
	}

	result, err := s.engine.Proxy(c.Request.Context(), delivery.ProxyRequest{
		Integration: in,
		OrgID:       orgID,
		Method:      c.Request.Method,
		Body:        body,
	})
	if err != nil {
		if result != nil && result.StatusCode > 0 {
			relayResponse(c, result.StatusCode, result)
			return
		}
		mapError(c, err)
		return
	}
	relayResponse(c, result.StatusCode, result)
}

// relayResponse writes the upstream response through to the client,
// preserving status and content type.
func relayResponse(c *gin.Context, status int, result *delivery.Result) {
	contentType := result.Headers.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(status, contentType, result.Body)
}
