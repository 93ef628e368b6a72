// Package trace persists execution logs and delivery attempts. Every
// integration execution gets a trace ID at start; step entries accumulate in
// memory and flush with the terminal transition.
package trace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/pkg/masking"
)

const writeTimeout = 5 * time.Second

// Direction mirrors the execution log direction enum.
type Direction = executionlog.Direction

// Direction values.
const (
	DirectionOutbound  = executionlog.DirectionOutbound
	DirectionInbound   = executionlog.DirectionInbound
	DirectionScheduled = executionlog.DirectionScheduled
)

// TriggerType mirrors the execution log trigger enum.
type TriggerType = executionlog.TriggerType

// TriggerType values.
const (
	TriggerEvent    = executionlog.TriggerTypeEvent
	TriggerSchedule = executionlog.TriggerTypeSchedule
	TriggerReplay   = executionlog.TriggerTypeReplay
	TriggerProxy    = executionlog.TriggerTypeProxy
)

// StartParams identifies the execution being traced.
type StartParams struct {
	Direction       Direction
	TriggerType     TriggerType
	IntegrationID   string
	IntegrationName string
	OrgID           string
	EventID         string
	MessageID       string
	ActionIndex     *int
	ParentTraceID   string
}

// Logger creates and finalizes execution traces.
type Logger struct {
	client *ent.Client
	masker *masking.Service
}

// NewLogger creates a trace logger. The masker redacts request and response
// snapshots before they are persisted.
func NewLogger(client *ent.Client, masker *masking.Service) *Logger {
	return &Logger{client: client, masker: masker}
}

// Trace is an in-flight execution. Step entries buffer in memory; terminal
// transitions persist everything in one update.
type Trace struct {
	ID string

	logger    *Logger
	startedAt time.Time

	mu       sync.Mutex
	steps    []map[string]interface{}
	request  map[string]interface{}
	response map[string]interface{}
	attempts int
	done     bool
}

// Start creates a pending execution log row and returns the trace handle.
func (l *Logger) Start(ctx context.Context, p StartParams) (*Trace, error) {
	if p.IntegrationID == "" {
		return nil, fmt.Errorf("trace start: integration ID required")
	}
	if p.OrgID == "" {
		return nil, fmt.Errorf("trace start: org ID required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	traceID := uuid.New().String()
	now := time.Now()

	create := l.client.ExecutionLog.Create().
		SetID(traceID).
		SetDirection(p.Direction).
		SetTriggerType(p.TriggerType).
		SetIntegrationID(p.IntegrationID).
		SetIntegrationName(p.IntegrationName).
		SetOrgID(p.OrgID).
		SetStatus(executionlog.StatusPending).
		SetStartedAt(now)

	if p.EventID != "" {
		create = create.SetEventID(p.EventID)
	}
	if p.MessageID != "" {
		create = create.SetMessageID(p.MessageID)
	}
	if p.ActionIndex != nil {
		create = create.SetActionIndex(*p.ActionIndex)
	}
	if p.ParentTraceID != "" {
		create = create.SetParentTraceID(p.ParentTraceID)
	}

	if err := create.Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to create execution log: %w", err)
	}

	return &Trace{ID: traceID, logger: l, startedAt: now}, nil
}

// Step appends a named step entry. Buffered; never fails the execution.
func (t *Trace) Step(name string, duration time.Duration, status string, metadata map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	entry := map[string]interface{}{
		"name":        name,
		"ts":          time.Now().UTC().Format(time.RFC3339Nano),
		"duration_ms": duration.Milliseconds(),
		"status":      status,
	}
	if len(metadata) > 0 {
		entry["metadata"] = t.logger.masker.RedactMap(metadata)
	}
	t.steps = append(t.steps, entry)
}

// SetRequest records the outbound request snapshot (redacted).
func (t *Trace) SetRequest(request map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.request = t.logger.masker.RedactMap(request)
}

// SetResponse records the final response snapshot (redacted).
func (t *Trace) SetResponse(response map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.response = t.logger.masker.RedactMap(response)
}

// Attempt persists one physical HTTP try under this trace.
func (t *Trace) Attempt(ctx context.Context, number int, status string, responseStatus *int, responseTime time.Duration, errMsg, retryReason string) {
	t.mu.Lock()
	t.attempts = number
	t.mu.Unlock()

	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	attemptStatus := deliveryattempt.StatusFailed
	if status == "success" {
		attemptStatus = deliveryattempt.StatusSuccess
	}

	create := t.logger.client.DeliveryAttempt.Create().
		SetID(uuid.New().String()).
		SetDeliveryLogID(t.ID).
		SetAttemptNumber(number).
		SetStatus(attemptStatus).
		SetResponseTimeMs(responseTime.Milliseconds()).
		SetAttemptedAt(time.Now())

	if responseStatus != nil {
		create = create.SetResponseStatus(*responseStatus)
	}
	if errMsg != "" {
		create = create.SetErrorMessage(t.logger.masker.RedactString(errMsg))
	}
	if retryReason != "" {
		create = create.SetRetryReason(retryReason)
	}

	if err := create.Exec(writeCtx); err != nil {
		// Attempt rows are diagnostics; losing one must not fail delivery.
		slog.Warn("Failed to persist delivery attempt",
			"trace_id", t.ID,
			"attempt", number,
			"error", err)
	}
}

// Succeed marks the trace successful and flushes buffered state.
func (t *Trace) Succeed(ctx context.Context) {
	t.finish(ctx, executionlog.StatusSuccess, "", "", "")
}

// Fail marks the trace failed with the classified error.
func (t *Trace) Fail(ctx context.Context, kind, message string) {
	t.finish(ctx, executionlog.StatusFailed, kind, message, "")
}

// Skip marks the trace skipped with a machine-readable reason
// (condition_false, circuit_open, duplicate, ...).
func (t *Trace) Skip(ctx context.Context, reason string) {
	t.finish(ctx, executionlog.StatusSkipped, "", "", reason)
}

func (t *Trace) finish(ctx context.Context, status executionlog.Status, kind, message, skipReason string) {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return
	}
	t.done = true
	steps := t.steps
	request := t.request
	response := t.response
	attempts := t.attempts
	t.mu.Unlock()

	writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	now := time.Now()
	update := t.logger.client.ExecutionLog.UpdateOneID(t.ID).
		SetStatus(status).
		SetAttempts(attempts).
		SetFinishedAt(now).
		SetDurationMs(now.Sub(t.startedAt).Milliseconds())

	if len(steps) > 0 {
		update = update.SetSteps(steps)
	}
	if request != nil {
		update = update.SetRequest(request)
	}
	if response != nil {
		update = update.SetResponse(response)
	}
	if message != "" {
		update = update.SetErrorMessage(t.logger.masker.RedactString(message))
	}
	if kind != "" {
		update = update.SetErrorKind(kind)
	}
	if skipReason != "" {
		update = update.SetSkipReason(skipReason)
	}

	if err := update.Exec(writeCtx); err != nil {
		slog.Error("Failed to finalize execution log",
			"trace_id", t.ID,
			"status", status,
			"error", err)
	}
}
