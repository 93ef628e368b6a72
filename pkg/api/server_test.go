package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/pkg/config"
)

func newTestServer(integrations ...*config.Integration) *Server {
	return &Server{integrations: config.NewIntegrationRegistry(integrations)}
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestListEventsRequiresOrgID(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/api/v1/events", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "org_id is required")
}

func TestListEventsRejectsBadLimit(t *testing.T) {
	for _, limit := range []string{"0", "-5", "501", "abc"} {
		w := do(t, newTestServer(), http.MethodGet, "/api/v1/events?org_id=org-1&limit="+limit, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
	}
}

func TestCancelScheduleRequiresCancelledBy(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/api/v1/schedules/sched-1/cancel", `{"reason":"x"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled_by is required")
}

func TestProxyUnknownPath(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/proxy/unknown/route", `{}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestProxyResolvesOnlyActiveInbound(t *testing.T) {
	inactive := &config.Integration{
		ID: "int-1", OrgID: "org-1", Name: "inactive",
		Direction: config.DirectionInbound, ProxyPath: "crm/orders", IsActive: false,
	}
	outbound := &config.Integration{
		ID: "int-2", OrgID: "org-1", Name: "outbound",
		Direction: config.DirectionOutbound, ProxyPath: "crm/orders", IsActive: true,
	}
	s := newTestServer(inactive, outbound)

	w := do(t, s, http.MethodPost, "/proxy/crm/orders", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProxyRejectsCrossOrgHeader(t *testing.T) {
	in := &config.Integration{
		ID: "int-1", OrgID: "org-1", Name: "orders",
		Direction: config.DirectionInbound, ProxyPath: "crm/orders", IsActive: true,
	}
	s := newTestServer(in)

	req := httptest.NewRequest(http.MethodPost, "/proxy/crm/orders", strings.NewReader(`{}`))
	req.Header.Set("X-Org-ID", "org-2")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "mismatched org must not leak the integration's existence")
}

func TestSecurityHeaders(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/api/v1/events", "")

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}

func TestErrorEnvelopeShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, http.StatusBadRequest, CategoryValidation, "boom")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"category":"VALIDATION_ERROR","message":"boom"}}`, w.Body.String())
}
