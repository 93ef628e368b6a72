package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/pkg/config"
)

func httpSource(url string) *config.Source {
	return &config.Source{
		ID:    "src-http",
		OrgID: "org-1",
		Type:  config.SourceHTTP,
		URL:   url,
		Columns: config.ColumnMapping{
			ID:        "id",
			OrgID:     "orgId",
			EventType: "type",
			Payload:   "data",
			Timestamp: "ts",
		},
	}
}

func TestHTTPFetch_ParsesEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1700000000000", r.URL.Query().Get("since"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id":    "row-1",
				"orgId": "org-1",
				"type":  "invoice.created",
				"ts":    float64(1700000005000),
				"data":  map[string]interface{}{"amount": 100},
			},
			{
				"id":   "row-2",
				"type": "invoice.created",
				"ts":   float64(1700000006000),
				"data": map[string]interface{}{"amount": 200},
			},
		})
	}))
	defer server.Close()

	r := NewHTTPReader(httpSource(server.URL), server.Client(), 0)
	events, err := r.Fetch(context.Background(), 1700000000000, 10)

	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "row-1", events[0].SourceID)
	assert.Equal(t, "org-1", events[0].OrgID)
	assert.Equal(t, "invoice.created", events[0].EventType)
	assert.Equal(t, float64(100), events[0].Payload["amount"])
	assert.Equal(t, int64(1700000005000), events[0].Cursor)

	// Missing orgId falls back to the source's configured org.
	assert.Equal(t, "org-1", events[1].OrgID)
}

func TestHTTPFetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	r := NewHTTPReader(httpSource(server.URL), server.Client(), 0)
	_, err := r.Fetch(context.Background(), 0, 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestHTTPFetch_WholeDocAsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "row-1", "type": "ping", "amount": 5},
		})
	}))
	defer server.Close()

	src := httpSource(server.URL)
	src.Columns.Payload = "missing"
	r := NewHTTPReader(src, server.Client(), 0)

	events, err := r.Fetch(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, float64(5), events[0].Payload["amount"])
}
