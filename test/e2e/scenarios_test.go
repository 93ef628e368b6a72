package e2e

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/dlqentry"
	"github.com/relayforge/relayforge/ent/eventaudit"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/ent/scheduledentry"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/scheduler"
)

func testSchedulerConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		TickInterval:  50 * time.Millisecond,
		Skew:          time.Second,
		LeaseDuration: 30 * time.Second,
		OverdueWindow: time.Minute,
		BatchSize:     10,
	}
}

func TestTransientFailureRetriedToSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	// First request fails with 503, every later one succeeds.
	var hits atomic.Int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	h := NewHarness(t, outboundIntegration("int-orders", "org-1", "order.created", target.URL))
	client := h.DB.NewClient(t)
	ctx := context.Background()

	event := Event("row-retry", "org-1", "order.created", map[string]interface{}{"order_id": "o-9"})
	require.NoError(t, h.Pipeline.Handle(ctx, event))

	entries, err := client.DLQEntry.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dlqentry.StatusQueued, entries[0].Status)
	require.NotNil(t, entries[0].NextAttemptAt)

	h.DLQWorker.Start(ctx)
	defer h.DLQWorker.Stop()

	// A successful background re-drive marks the entry replayed; it stays
	// visible until the retention sweep.
	require.Eventually(t, func() bool {
		got, err := client.DLQEntry.Get(ctx, entries[0].ID)
		return err == nil && got.Status == dlqentry.StatusReplayed
	}, 10*time.Second, 50*time.Millisecond, "parked entry re-driven and marked replayed")

	assert.Equal(t, int32(2), hits.Load())

	// The re-drive leaves its own trace, chained to the failed one.
	original, err := client.ExecutionLog.Query().
		Where(
			executionlog.EventIDEQ(event.ID),
			executionlog.StatusEQ(executionlog.StatusFailed),
		).
		Only(ctx)
	require.NoError(t, err)

	replay, err := client.ExecutionLog.Query().
		Where(executionlog.TriggerTypeEQ(executionlog.TriggerTypeReplay)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, executionlog.StatusSuccess, replay.Status)
	require.NotNil(t, replay.ParentTraceID)
	assert.Equal(t, original.ID, *replay.ParentTraceID)
}

func TestClientErrorAbandonsWithoutRetry(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var status atomic.Int32
	status.Store(http.StatusBadRequest)
	var hits atomic.Int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(int(status.Load()))
	}))
	defer target.Close()

	h := NewHarness(t, outboundIntegration("int-orders", "org-1", "order.created", target.URL))
	client := h.DB.NewClient(t)
	ctx := context.Background()

	event := Event("row-bad", "org-1", "order.created", map[string]interface{}{"order_id": "o-bad"})
	require.NoError(t, h.Pipeline.Handle(ctx, event))

	audit, err := client.EventAudit.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, eventaudit.StatusFailed, audit.Status)

	// A 4xx is deterministic: abandoned immediately, never scheduled.
	entries, err := client.DLQEntry.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dlqentry.StatusAbandoned, entries[0].Status)
	assert.Equal(t, "HTTP_CLIENT_ERROR", entries[0].ErrorCode)
	assert.Nil(t, entries[0].NextAttemptAt)

	// Rejected payloads are the sender's problem, not the endpoint's: even
	// repeated 4xx must leave the circuit closed.
	for i := 0; i < 5; i++ {
		ev := Event("row-bad-"+string(rune('a'+i)), "org-1", "order.created", map[string]interface{}{"n": i})
		require.NoError(t, h.Pipeline.Handle(ctx, ev))
	}
	status.Store(http.StatusOK)

	ok := Event("row-ok", "org-1", "order.created", map[string]interface{}{"order_id": "o-ok"})
	require.NoError(t, h.Pipeline.Handle(ctx, ok))

	audit, err = client.EventAudit.Get(ctx, ok.ID)
	require.NoError(t, err)
	assert.Equal(t, eventaudit.StatusDelivered, audit.Status)
	assert.Equal(t, int32(7), hits.Load(), "the closed circuit let every request through")
}

func TestCircuitOpensAfterConsecutiveServerErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var hits atomic.Int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer target.Close()

	h := NewHarness(t, outboundIntegration("int-down", "org-1", "order.created", target.URL))
	client := h.DB.NewClient(t)
	ctx := context.Background()

	// Five consecutive 5xx failures reach the harness threshold.
	for i := 0; i < 5; i++ {
		ev := Event("row-dn-"+string(rune('a'+i)), "org-1", "order.created", map[string]interface{}{"n": i})
		require.NoError(t, h.Pipeline.Handle(ctx, ev))
	}
	require.Equal(t, int32(5), hits.Load())

	// The sixth event is gated before any network work.
	gated := Event("row-gated", "org-1", "order.created", map[string]interface{}{"n": 6})
	require.NoError(t, h.Pipeline.Handle(ctx, gated))
	assert.Equal(t, int32(5), hits.Load(), "open circuit must not reach the endpoint")

	log, err := client.ExecutionLog.Query().
		Where(executionlog.EventIDEQ(gated.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, executionlog.StatusSkipped, log.Status)
	require.NotNil(t, log.SkipReason)
	assert.Equal(t, "circuit_open", *log.SkipReason)

	// The transformed payload is still parked so nothing is lost when the
	// endpoint recovers.
	entry, err := client.DLQEntry.Query().
		Where(dlqentry.MessageIDEQ(gated.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, dlqentry.StatusQueued, entry.Status)
	assert.Equal(t, "CIRCUIT_OPEN", entry.ErrorCode)
}

func TestMultiActionConditionGatesPerAction(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var primary, escalation atomic.Int32
	primaryTarget := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primary.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer primaryTarget.Close()
	escalationTarget := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		escalation.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer escalationTarget.Close()

	in := outboundIntegration("int-multi", "org-1", "order.created", "")
	in.Actions = []config.Action{
		{Name: "record", TargetURL: primaryTarget.URL, HTTPMethod: http.MethodPost},
		{Name: "large-order-alert", TargetURL: escalationTarget.URL, HTTPMethod: http.MethodPost,
			Condition: "event.amount > 1000"},
	}

	h := NewHarness(t, in)
	client := h.DB.NewClient(t)
	ctx := context.Background()

	event := Event("row-small", "org-1", "order.created", map[string]interface{}{"order_id": "o-1", "amount": 500})
	require.NoError(t, h.Pipeline.Handle(ctx, event))

	assert.Equal(t, int32(1), primary.Load())
	assert.Equal(t, int32(0), escalation.Load())

	logs, err := client.ExecutionLog.Query().
		Where(executionlog.EventIDEQ(event.ID)).
		Order(ent.Asc(executionlog.FieldActionIndex)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	require.NotNil(t, logs[0].ActionIndex)
	assert.Equal(t, 0, *logs[0].ActionIndex)
	assert.Equal(t, executionlog.StatusSuccess, logs[0].Status)

	require.NotNil(t, logs[1].ActionIndex)
	assert.Equal(t, 1, *logs[1].ActionIndex)
	assert.Equal(t, executionlog.StatusSkipped, logs[1].Status)
	require.NotNil(t, logs[1].SkipReason)
	assert.Equal(t, "condition_false", *logs[1].SkipReason)

	// One action delivered is enough for the event to count as delivered.
	audit, err := client.EventAudit.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, eventaudit.StatusDelivered, audit.Status)
}

func TestDelayedDeliveryDispatchedByScheduler(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var received atomic.Int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	in := outboundIntegration("int-delayed", "org-1", "order.created", target.URL)
	in.DeliveryMode = config.DeliveryDelayed
	in.SchedulingScript = `function schedule(event, context) { return context.now + 300; }`

	h := NewHarness(t, in)
	client := h.DB.NewClient(t)
	ctx := context.Background()

	event := Event("row-later", "org-1", "order.created", map[string]interface{}{"order_id": "o-77"})
	require.NoError(t, h.Pipeline.Handle(ctx, event))

	// Nothing is sent inline; the event is planned instead.
	assert.Equal(t, int32(0), received.Load())

	entry, err := client.ScheduledEntry.Query().
		Where(scheduledentry.IntegrationIDEQ("int-delayed")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduledentry.StatusPending, entry.Status)
	assert.Equal(t, event.ID, entry.OriginalEventID)
	assert.WithinDuration(t, time.Now().Add(300*time.Millisecond), entry.ScheduledFor, 5*time.Second)

	worker := scheduler.NewWorker("pod-test", client.Client, testSchedulerConfig(), h.Integrations, h.Schedules, h.Engine)
	worker.Start(ctx)
	defer worker.Stop()

	require.Eventually(t, func() bool {
		got, err := client.ScheduledEntry.Get(ctx, entry.ID)
		return err == nil && got.Status == scheduledentry.StatusSent
	}, 10*time.Second, 50*time.Millisecond, "due entry leased and dispatched")

	assert.Equal(t, int32(1), received.Load(), "dispatched exactly once")

	log, err := client.ExecutionLog.Query().
		Where(executionlog.MessageIDEQ(entry.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, executionlog.StatusSuccess, log.Status)
	assert.Equal(t, executionlog.TriggerTypeSchedule, log.TriggerType)
}

func TestOverdueEntryStillDispatched(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	var received atomic.Int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	h := NewHarness(t, outboundIntegration("int-late", "org-1", "order.created", target.URL))
	client := h.DB.NewClient(t)
	ctx := context.Background()

	// An entry that sat through downtime and was relabeled by the janitor.
	entry, err := client.ScheduledEntry.Create().
		SetID("sched-late-1").
		SetIntegrationID("int-late").
		SetOrgID("org-1").
		SetOriginalEventID("evt-old").
		SetEventType("order.created").
		SetScheduledFor(time.Now().Add(-5 * time.Minute)).
		SetStatus(scheduledentry.StatusOverdue).
		SetPayload(map[string]interface{}{"order_id": "o-old"}).
		SetTargetURL(target.URL).
		Save(ctx)
	require.NoError(t, err)

	worker := scheduler.NewWorker("pod-test", client.Client, testSchedulerConfig(), h.Integrations, h.Schedules, h.Engine)
	worker.Start(ctx)
	defer worker.Stop()

	// The relabel is observability, not a dead end: the entry is still
	// claimed and dispatched exactly once.
	require.Eventually(t, func() bool {
		got, err := client.ScheduledEntry.Get(ctx, entry.ID)
		return err == nil && got.Status == scheduledentry.StatusSent
	}, 10*time.Second, 50*time.Millisecond, "overdue entry dispatched")

	assert.Equal(t, int32(1), received.Load())
}

func TestFailedRecurringDispatchEndsSeries(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer target.Close()

	in := outboundIntegration("int-digest", "org-1", "order.created", target.URL)
	in.DeliveryMode = config.DeliveryRecurring
	in.SchedulingScript = `function schedule(event, context) {
		return { firstOccurrence: context.now + 200, intervalMs: 60000, maxOccurrences: 3 };
	}`

	h := NewHarness(t, in)
	client := h.DB.NewClient(t)
	ctx := context.Background()

	event := Event("row-digest", "org-1", "order.created", map[string]interface{}{"n": 1})
	require.NoError(t, h.Pipeline.Handle(ctx, event))

	worker := scheduler.NewWorker("pod-test", client.Client, testSchedulerConfig(), h.Integrations, h.Schedules, h.Engine)
	worker.Start(ctx)

	require.Eventually(t, func() bool {
		n, err := client.ScheduledEntry.Query().
			Where(scheduledentry.StatusEQ(scheduledentry.StatusFailed)).
			Count(ctx)
		return err == nil && n == 1
	}, 10*time.Second, 50*time.Millisecond, "first occurrence dispatched and failed")
	worker.Stop()

	// A failed dispatch ends the series: no follow-up occurrence is created.
	total, err := client.ScheduledEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestStrandedRetryingEntryReclaimed(t *testing.T) {
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
	client := h.DB.NewClient(t)
	ctx := context.Background()

	// An entry claimed by a worker that died mid-redelivery: stuck in
	// retrying with a stale updated_at.
	err := client.DLQEntry.Create().
		SetID("dlq-stuck-1").
		SetTraceID("trace-old").
		SetMessageID("msg-old").
		SetIntegrationID("int-orders").
		SetOrgID("org-1").
		SetDirection(dlqentry.DirectionOutbound).
		SetPayload(map[string]interface{}{"order_id": "o-stuck"}).
		SetErrorMessage("HTTP 503").
		SetErrorCode("HTTP_TRANSIENT_ERROR").
		SetMaxRetries(3).
		SetAttempts(1).
		SetStatus(dlqentry.StatusRetrying).
		SetUpdatedAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	h.DLQWorker.Start(ctx)
	defer h.DLQWorker.Stop()

	// The stuck sweep returns it to the queue, and the next scan re-drives.
	require.Eventually(t, func() bool {
		got, err := client.DLQEntry.Get(ctx, "dlq-stuck-1")
		return err == nil && got.Status == dlqentry.StatusReplayed
	}, 10*time.Second, 50*time.Millisecond, "stranded entry reclaimed and re-driven")

	assert.Equal(t, int32(1), received.Load())
}
