package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/delivery"
)

func mapErrorStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	mapError(c, err)
	return w.Code, w.Body.String()
}

func TestMapErrorIntegrationNotFound(t *testing.T) {
	code, body := mapErrorStatus(t, config.ErrIntegrationNotFound)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, "NOT_FOUND")

	code, _ = mapErrorStatus(t, fmt.Errorf("loading: %w", config.ErrIntegrationNotFound))
	assert.Equal(t, http.StatusNotFound, code, "wrapped sentinel still maps")
}

func TestMapErrorDeliveryKinds(t *testing.T) {
	cases := []struct {
		kind delivery.ErrorKind
		want int
	}{
		{delivery.KindURLBlocked, http.StatusBadRequest},
		{delivery.KindCircuitOpen, http.StatusServiceUnavailable},
		{delivery.KindTimeout, http.StatusBadGateway},
		{delivery.KindNetwork, http.StatusBadGateway},
		{delivery.KindTLS, http.StatusBadGateway},
		{delivery.KindHTTPClient, http.StatusBadGateway},
		{delivery.KindHTTPTransient, http.StatusBadGateway},
		{delivery.KindInternal, http.StatusInternalServerError},
		{delivery.KindTransformation, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		de := &delivery.Error{Kind: tc.kind, Err: errors.New("x")}
		code, _ := mapErrorStatus(t, de)
		assert.Equal(t, tc.want, code, "kind %s", tc.kind)

		code, _ = mapErrorStatus(t, fmt.Errorf("replay failed: %w", de))
		assert.Equal(t, tc.want, code, "wrapped kind %s", tc.kind)
	}
}

func TestMapErrorUnknownIsInternal(t *testing.T) {
	code, body := mapErrorStatus(t, errors.New("mystery"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.NotContains(t, body, "mystery", "internal details must not leak to clients")
}
