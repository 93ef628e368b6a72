package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/ent/dlqentry"
	"github.com/relayforge/relayforge/ent/eventaudit"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/pkg/config"
)

func outboundIntegration(id, orgID, eventType, targetURL string) *config.Integration {
	return &config.Integration{
		ID:           id,
		OrgID:        orgID,
		Name:         id,
		Direction:    config.DirectionOutbound,
		EventType:    eventType,
		Scope:        config.ScopeEntityOnly,
		TargetURL:    targetURL,
		HTTPMethod:   http.MethodPost,
		DeliveryMode: config.DeliveryImmediate,
		IsActive:     true,
		UpdatedAt:    time.Now(),
	}
}

func TestPipelineDeliversMatchedEvent(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var received atomic.Int32
	var lastBody []byte
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastBody, _ = io.ReadAll(r.Body)
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	h := NewHarness(t, outboundIntegration("int-orders", "org-1", "order.created", target.URL))
	client := h.DB.NewClient(t)
	ctx := context.Background()

	event := Event("row-1", "org-1", "order.created", map[string]interface{}{"order_id": "o-42", "amount": 99.5})
	require.NoError(t, h.Pipeline.Handle(ctx, event))

	assert.Equal(t, int32(1), received.Load())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(lastBody, &body))
	assert.Equal(t, "o-42", body["order_id"])

	audit, err := client.EventAudit.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, eventaudit.StatusDelivered, audit.Status)

	logs, err := client.ExecutionLog.Query().
		Where(executionlog.EventIDEQ(event.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, executionlog.StatusSuccess, logs[0].Status)
	assert.Equal(t, "int-orders", logs[0].IntegrationID)
}

func TestPipelineDeduplicatesBySourceID(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var received atomic.Int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	h := NewHarness(t, outboundIntegration("int-orders", "org-1", "order.created", target.URL))
	ctx := context.Background()

	first := Event("row-7", "org-1", "order.created", map[string]interface{}{"n": 1})
	require.NoError(t, h.Pipeline.Handle(ctx, first))

	// Same upstream row polled again; must be silently dropped.
	dup := Event("row-7", "org-1", "order.created", map[string]interface{}{"n": 1})
	require.NoError(t, h.Pipeline.Handle(ctx, dup))

	assert.Equal(t, int32(1), received.Load())
	assert.Empty(t, dup.ID, "duplicate must not be admitted")
}

func TestPipelineSkipsUnmatchedEvent(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	h := NewHarness(t, outboundIntegration("int-orders", "org-1", "order.created", "https://example.com/hook"))
	client := h.DB.NewClient(t)
	ctx := context.Background()

	event := Event("row-9", "org-1", "invoice.paid", map[string]interface{}{"x": 1})
	require.NoError(t, h.Pipeline.Handle(ctx, event))

	audit, err := client.EventAudit.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, eventaudit.StatusSkipped, audit.Status)
}

func TestFailedDeliveryParksInDLQAndReplays(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var healthy atomic.Bool
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if healthy.Load() {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer target.Close()

	h := NewHarness(t, outboundIntegration("int-flaky", "org-1", "order.created", target.URL))
	client := h.DB.NewClient(t)
	ctx := context.Background()

	event := Event("row-11", "org-1", "order.created", map[string]interface{}{"order_id": "o-1"})
	require.NoError(t, h.Pipeline.Handle(ctx, event))

	audit, err := client.EventAudit.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, eventaudit.StatusFailed, audit.Status)

	entries, err := client.DLQEntry.Query().
		Where(dlqentry.IntegrationIDEQ("int-flaky")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dlqentry.StatusQueued, entries[0].Status)
	assert.Equal(t, "HTTP_TRANSIENT_ERROR", entries[0].ErrorCode)

	// Endpoint recovers; a manual replay drives the parked payload through.
	healthy.Store(true)
	require.NoError(t, h.DLQWorker.Replay(ctx, entries[0].ID))

	replayed, err := client.DLQEntry.Get(ctx, entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, dlqentry.StatusReplayed, replayed.Status)
}

func TestMultiReplicaDLQClaiming(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var healthy atomic.Bool
	var redriven atomic.Int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if healthy.Load() {
			redriven.Add(1)
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer target.Close()

	h := NewHarness(t, outboundIntegration("int-orders", "org-1", "order.created", target.URL))
	client := h.DB.NewClient(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		event := Event("row-"+string(rune('a'+i)), "org-1", "order.created", map[string]interface{}{"n": i})
		require.NoError(t, h.Pipeline.Handle(ctx, event))
	}

	parked, err := client.DLQEntry.Query().Where(dlqentry.StatusEQ(dlqentry.StatusQueued)).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, parked)

	// Two replicas share the schema; SKIP LOCKED claiming must hand each
	// entry to exactly one of them.
	healthy.Store(true)
	h.DLQWorker.Start(ctx)
	second := NewReplicaDLQWorker(t, h)
	second.Start(ctx)

	require.Eventually(t, func() bool {
		n, err := client.DLQEntry.Query().Where(dlqentry.StatusEQ(dlqentry.StatusQueued)).Count(ctx)
		return err == nil && n == 0
	}, 10*time.Second, 100*time.Millisecond, "all parked entries re-driven")

	h.DLQWorker.Stop()
	second.Stop()

	assert.Equal(t, int32(3), redriven.Load(), "each entry re-driven exactly once")
}
