// Package e2e exercises the gateway pipeline end to end against a real
// PostgreSQL schema and live HTTP targets.
package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/relayforge/relayforge/pkg/breaker"
	"github.com/relayforge/relayforge/pkg/condition"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/delivery"
	"github.com/relayforge/relayforge/pkg/ingest"
	"github.com/relayforge/relayforge/pkg/masking"
	"github.com/relayforge/relayforge/pkg/match"
	"github.com/relayforge/relayforge/pkg/models"
	"github.com/relayforge/relayforge/pkg/retry"
	"github.com/relayforge/relayforge/pkg/scheduler"
	"github.com/relayforge/relayforge/pkg/trace"
	"github.com/relayforge/relayforge/pkg/transform"
	testdb "github.com/relayforge/relayforge/test/database"
	"github.com/stretchr/testify/require"
)

// Harness wires a full gateway pipeline over a throwaway database schema.
type Harness struct {
	DB           *testdb.SharedTestDB
	Integrations *config.IntegrationRegistry
	Engine       *delivery.Engine
	Events       *ingest.Store
	Pipeline     *ingest.Pipeline
	DLQ          *retry.Store
	DLQWorker    *retry.Worker
	Schedules    *scheduler.Service

	retryCfg *config.RetryConfig
	backoff  *retry.Backoff
}

// NewReplicaDLQWorker builds a second DLQ worker over its own connection
// pool, simulating another pod against the same schema.
func NewReplicaDLQWorker(t *testing.T, h *Harness) *retry.Worker {
	t.Helper()
	replica := h.DB.NewClient(t)
	return retry.NewWorker(replica.Client, h.retryCfg, h.Integrations, h.Engine, h.backoff)
}

// retentionConfig returns short windows suitable for tests.
func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		LogRetention:    time.Hour,
		EventRetention:  time.Hour,
		DedupRetention:  time.Hour,
		CleanupInterval: time.Minute,
		StuckThreshold:  time.Minute,
	}
}

// NewHarness builds the pipeline against a fresh schema. Integrations are
// registered up front; targets usually point at httptest servers.
func NewHarness(t *testing.T, integrations ...*config.Integration) *Harness {
	t.Helper()

	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	registry := config.NewIntegrationRegistry(integrations)
	masker := masking.NewService()
	tracer := trace.NewLogger(client.Client, masker)

	breakerCfg := &config.BreakerConfig{FailureThreshold: 5, Cooldown: time.Minute}
	breakers := breaker.NewRegistry(breakerCfg, client.Client, nil)

	retryCfg := &config.RetryConfig{
		BaseDelay:          10 * time.Millisecond,
		MaxDelay:           time.Second,
		DefaultMaxAttempts: 3,
		ScanInterval:       50 * time.Millisecond,
		ScanBatchSize:      10,
		StuckThreshold:     200 * time.Millisecond,
	}
	backoff := retry.NewBackoff(retryCfg)
	dlqStore := retry.NewStore(client.Client, backoff, masker)

	deliveryCfg := &config.DeliveryConfig{
		DefaultTimeout:     5 * time.Second,
		AllowInsecureLocal: true, // httptest targets are loopback HTTP
		MaxResponseBytes:   64 * 1024,
	}

	engine := delivery.NewEngine(
		deliveryCfg,
		retryCfg,
		transform.New(5*time.Second),
		condition.New(5*time.Second),
		delivery.NewAuthenticator(&http.Client{}),
		delivery.NewSender(&http.Client{}, deliveryCfg.MaxResponseBytes),
		delivery.NewURLPolicy(true),
		breakers,
		tracer,
		dlqStore,
	)

	events, err := ingest.NewStore(client.Client, retentionConfig())
	require.NoError(t, err)

	schedules := scheduler.NewService(client.Client, scheduler.NewEvaluator(5*time.Second))
	pipeline := ingest.NewPipeline(events, match.New(registry), engine, schedules)
	dlqWorker := retry.NewWorker(client.Client, retryCfg, registry, engine, backoff)

	return &Harness{
		DB:           shared,
		Integrations: registry,
		Engine:       engine,
		Events:       events,
		Pipeline:     pipeline,
		DLQ:          dlqStore,
		DLQWorker:    dlqWorker,
		Schedules:    schedules,
		retryCfg:     retryCfg,
		backoff:      backoff,
	}
}

// Event builds a minimal source event for tests.
func Event(sourceID, orgID, eventType string, payload map[string]interface{}) *models.Event {
	return &models.Event{
		Source:     "src-test",
		SourceID:   sourceID,
		OrgID:      orgID,
		EventType:  eventType,
		Payload:    payload,
		ReceivedAt: time.Now(),
	}
}
