// Package delivery executes outbound HTTP deliveries: transformation,
// templating, auth, signing, URL policy, and failure classification.
package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/relayforge/relayforge/pkg/breaker"
	"github.com/relayforge/relayforge/pkg/condition"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/models"
	"github.com/relayforge/relayforge/pkg/trace"
	"github.com/relayforge/relayforge/pkg/transform"
)

// Failed describes a delivery that exhausted its inline attempt and should be
// parked for retry or abandonment.
type Failed struct {
	TraceID       string
	MessageID     string
	IntegrationID string
	OrgID         string
	Direction     string
	ActionIndex   *int
	Payload       map[string]interface{}
	Kind          ErrorKind
	StatusCode    int
	ErrorMessage  string
	Attempt       int
	MaxAttempts   int
	RetryAfter    time.Duration
}

// RetryScheduler parks failed deliveries for later re-drive.
type RetryScheduler interface {
	Schedule(ctx context.Context, f Failed) error
}

// Outcome summarizes one integration execution across its actions.
type Outcome struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
}

// Delivered reports whether every non-skipped action succeeded.
func (o Outcome) Delivered() bool {
	return o.Failed == 0 && o.Succeeded > 0
}

// AllSkipped reports whether nothing ran at all.
func (o Outcome) AllSkipped() bool {
	return o.Succeeded == 0 && o.Failed == 0
}

// Engine runs integration executions end to end.
type Engine struct {
	cfg         *config.DeliveryConfig
	retryCfg    *config.RetryConfig
	transformer *transform.Transformer
	conditions  *condition.Evaluator
	auth        *Authenticator
	sender      *Sender
	policy      *URLPolicy
	breakers    *breaker.Registry
	tracer      *trace.Logger
	retries     RetryScheduler
}

// NewEngine wires the delivery pipeline.
func NewEngine(
	cfg *config.DeliveryConfig,
	retryCfg *config.RetryConfig,
	transformer *transform.Transformer,
	conditions *condition.Evaluator,
	auth *Authenticator,
	sender *Sender,
	policy *URLPolicy,
	breakers *breaker.Registry,
	tracer *trace.Logger,
	retries RetryScheduler,
) *Engine {
	return &Engine{
		cfg:         cfg,
		retryCfg:    retryCfg,
		transformer: transformer,
		conditions:  conditions,
		auth:        auth,
		sender:      sender,
		policy:      policy,
		breakers:    breakers,
		tracer:      tracer,
		retries:     retries,
	}
}

// Deliver executes every action of a matched integration for an event.
// Actions run sequentially; a failing action continues to the next unless its
// on_error policy is STOP.
func (e *Engine) Deliver(ctx context.Context, event *models.Event, in *config.Integration, trigger trace.TriggerType, messageID string) Outcome {
	tctx := transform.Context{
		OrgID:           event.OrgID,
		OrgUnitID:       event.OrgUnitID,
		EventType:       event.EventType,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		Now:             time.Now(),
	}

	actions := e.resolveActions(in)
	out := Outcome{Total: len(actions)}

	// Integration-level gate. A gate error counts as a failure, not a skip,
	// so misconfigured conditions surface in alerts.
	if in.Condition != "" {
		pass, err := e.conditions.Evaluate(ctx, in.Condition, event.Payload, tctx)
		if err != nil {
			e.recordGateFailure(ctx, event, in, trigger, messageID, err)
			out.Failed = out.Total
			return out
		}
		if !pass {
			e.recordGateSkip(ctx, event, in, trigger, messageID)
			out.Skipped = out.Total
			return out
		}
	}

	for idx := range actions {
		action := &actions[idx]
		var actionIndex *int
		if in.MultiAction() {
			i := idx
			actionIndex = &i
		}

		status := e.deliverAction(ctx, event, in, action, actionIndex, trigger, messageID, tctx)
		switch status {
		case actionSucceeded:
			out.Succeeded++
		case actionSkipped:
			out.Skipped++
		default:
			out.Failed++
			if action.OnError == config.OnErrorStop {
				out.Skipped += len(actions) - idx - 1
				slog.Info("Stopping remaining actions after failure",
					"integration_id", in.ID,
					"action", action.Name,
					"remaining", len(actions)-idx-1)
				return out
			}
		}
	}
	return out
}

type actionStatus int

const (
	actionSucceeded actionStatus = iota
	actionFailed
	actionSkipped
)

func (e *Engine) deliverAction(ctx context.Context, event *models.Event, in *config.Integration, action *config.Action, actionIndex *int, trigger trace.TriggerType, messageID string, tctx transform.Context) actionStatus {
	t, err := e.tracer.Start(ctx, trace.StartParams{
		Direction:       trace.DirectionOutbound,
		TriggerType:     trigger,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		OrgID:           event.OrgID,
		EventID:         event.ID,
		MessageID:       messageID,
		ActionIndex:     actionIndex,
	})
	if err != nil {
		slog.Error("Failed to start trace", "integration_id", in.ID, "error", err)
		return actionFailed
	}

	// Action-level gate.
	if action.Condition != "" {
		start := time.Now()
		pass, err := e.conditions.Evaluate(ctx, action.Condition, event.Payload, tctx)
		if err != nil {
			de := Classify(err)
			t.Step("condition", time.Since(start), "failed", nil)
			t.Fail(ctx, string(KindCondition), de.Error())
			return actionFailed
		}
		t.Step("condition", time.Since(start), "success", map[string]interface{}{"result": pass})
		if !pass {
			t.Skip(ctx, "condition_false")
			return actionSkipped
		}
	}

	// Transformation.
	start := time.Now()
	body, err := e.transformer.Apply(ctx, action.Transformation, event.Payload, tctx)
	if err != nil {
		de := Classify(err)
		t.Step("transform", time.Since(start), "failed", nil)
		t.Fail(ctx, string(de.Kind), de.Error())
		return actionFailed
	}
	t.Step("transform", time.Since(start), "success", nil)

	body = transform.Substitute(body, tctx)
	payload := wrapPayload(body)

	// Circuit gate before any network work. The transformed payload is
	// parked so the re-drive skips straight to send.
	if !e.breakers.Allow(in.ID) {
		t.Skip(ctx, "circuit_open")
		e.park(ctx, t.ID, messageID, in, event.OrgID, actionIndex, payload, &Error{Kind: KindCircuitOpen, Err: breaker.ErrCircuitOpen}, 1, 0)
		return actionFailed
	}

	de := e.send(ctx, t, in, action, payload, tctx, 1)
	if de == nil {
		t.Succeed(ctx)
		return actionSucceeded
	}

	t.Fail(ctx, string(de.Kind), de.Error())
	e.park(ctx, t.ID, messageID, in, event.OrgID, actionIndex, payload, de, 1, retryAfterOf(de))
	return actionFailed
}

// Redeliver re-drives a parked delivery from its stored payload. The
// transformation is not re-run; URL, auth, and signing are re-evaluated so
// rotated credentials take effect.
func (e *Engine) Redeliver(ctx context.Context, in *config.Integration, parentTraceID, messageID, orgID string, actionIndex *int, payload map[string]interface{}, attempt int) error {
	action := e.actionAt(in, actionIndex)
	if action == nil {
		return fmt.Errorf("integration %s has no action at index %v", in.ID, actionIndex)
	}

	tctx := transform.Context{
		OrgID:           orgID,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		Now:             time.Now(),
	}

	t, err := e.tracer.Start(ctx, trace.StartParams{
		Direction:       trace.DirectionOutbound,
		TriggerType:     trace.TriggerReplay,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		OrgID:           orgID,
		MessageID:       messageID,
		ActionIndex:     actionIndex,
		ParentTraceID:   parentTraceID,
	})
	if err != nil {
		return fmt.Errorf("failed to start replay trace: %w", err)
	}

	if !e.breakers.Allow(in.ID) {
		t.Skip(ctx, "circuit_open")
		return &Error{Kind: KindCircuitOpen, Err: breaker.ErrCircuitOpen}
	}

	de := e.send(ctx, t, in, action, payload, tctx, attempt)
	if de == nil {
		t.Succeed(ctx)
		return nil
	}
	t.Fail(ctx, string(de.Kind), de.Error())
	return de
}

// send prepares and executes the HTTP request under the circuit breaker.
func (e *Engine) send(ctx context.Context, t *trace.Trace, in *config.Integration, action *config.Action, payload map[string]interface{}, tctx transform.Context, attempt int) *Error {
	encoded, err := json.Marshal(unwrapPayload(payload))
	if err != nil {
		return newError(KindInternal, fmt.Errorf("encoding request body: %w", err))
	}
	if e.cfg.PayloadWarnBytes > 0 && len(encoded) > e.cfg.PayloadWarnBytes {
		slog.Warn("Transformed payload is unusually large",
			"integration_id", in.ID,
			"bytes", len(encoded))
	}

	targetURL := transform.SubstituteString(action.TargetURL, tctx)
	if _, de := e.policy.Validate(targetURL); de != nil {
		return de
	}

	method := action.HTTPMethod
	if method == "" {
		method = http.MethodPost
	}
	headers := transform.SubstituteHeaders(action.Headers, tctx)
	if headers == nil {
		headers = make(map[string]string)
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, nil)
	if err != nil {
		return newError(KindInternal, err)
	}
	client, aerr := e.auth.Apply(ctx, req, in.ID, action.Auth, tctx)
	if aerr != nil {
		return Classify(aerr)
	}
	for k := range req.Header {
		headers[k] = req.Header.Get(k)
	}

	if action.Signing != nil && len(action.Signing.Secrets) > 0 {
		headers[SignatureHeader(action.Signing)] = Sign(encoded, action.Signing)
	}

	t.SetRequest(map[string]interface{}{
		"method":  method,
		"url":     targetURL,
		"headers": headers,
		"body":    unwrapPayload(payload),
	})

	var result *Result
	var sendErr *Error
	start := time.Now()
	execErr := e.breakers.Execute(ctx, in.ID, func() error {
		result, sendErr = e.sender.Send(ctx, SendRequest{
			Method:  method,
			URL:     targetURL,
			Headers: headers,
			Body:    encoded,
			Client:  client,
			Timeout: in.Timeout(e.cfg.DefaultTimeout),
		})
		// 4xx responses are the payload's problem, not the endpoint's;
		// they must not push the circuit toward open.
		if sendErr != nil && sendErr.Kind != KindHTTPClient {
			return sendErr
		}
		return nil
	})
	elapsed := time.Since(start)

	// Both refusals mean the breaker never ran fn: open circuit, or a
	// half-open probe slot already held by another request.
	if execErr == breaker.ErrCircuitOpen || execErr == breaker.ErrTooManyRequests {
		return &Error{Kind: KindCircuitOpen, Err: execErr}
	}

	var status *int
	errMsg := ""
	attemptStatus := "success"
	if result != nil && result.StatusCode > 0 {
		s := result.StatusCode
		status = &s
	}
	if sendErr != nil {
		attemptStatus = "failed"
		errMsg = sendErr.Error()
	}
	t.Attempt(ctx, attempt, attemptStatus, status, elapsed, errMsg, retryReason(sendErr))

	if result != nil && result.StatusCode > 0 {
		t.SetResponse(map[string]interface{}{
			"status":    result.StatusCode,
			"headers":   flattenHeaders(result.Headers),
			"body":      string(result.Body),
			"truncated": result.Truncated,
		})
	}

	if sendErr != nil {
		if result != nil {
			sendErr.retryAfter = result.RetryAfter
		}
		return sendErr
	}
	return nil
}

// park hands a failed delivery to the retry scheduler when the failure is
// retryable and the integration has retry budget left.
func (e *Engine) park(ctx context.Context, traceID, messageID string, in *config.Integration, orgID string, actionIndex *int, payload map[string]interface{}, de *Error, attempt int, retryAfter time.Duration) {
	if e.retries == nil {
		return
	}

	err := e.retries.Schedule(ctx, Failed{
		TraceID:       traceID,
		MessageID:     messageID,
		IntegrationID: in.ID,
		OrgID:         orgID,
		Direction:     "outbound",
		ActionIndex:   actionIndex,
		Payload:       payload,
		Kind:          de.Kind,
		StatusCode:    de.StatusCode,
		ErrorMessage:  de.Error(),
		Attempt:       attempt,
		MaxAttempts:   in.MaxAttempts(e.retryCfg.DefaultMaxAttempts),
		RetryAfter:    retryAfter,
	})
	if err != nil {
		slog.Error("Failed to park delivery for retry",
			"trace_id", traceID,
			"integration_id", in.ID,
			"error", err)
	}
}

// resolveActions normalizes single-action integrations into a one-entry
// action list so the pipeline has a single shape.
func (e *Engine) resolveActions(in *config.Integration) []config.Action {
	if in.MultiAction() {
		return in.Actions
	}
	return []config.Action{{
		Name:           "default",
		TargetURL:      in.TargetURL,
		HTTPMethod:     in.HTTPMethod,
		Headers:        in.Headers,
		Transformation: in.Transformation,
		Auth:           in.Auth,
		Signing:        in.Signing,
	}}
}

func (e *Engine) actionAt(in *config.Integration, actionIndex *int) *config.Action {
	actions := e.resolveActions(in)
	idx := 0
	if actionIndex != nil {
		idx = *actionIndex
	}
	if idx < 0 || idx >= len(actions) {
		return nil
	}
	return &actions[idx]
}

func (e *Engine) recordGateSkip(ctx context.Context, event *models.Event, in *config.Integration, trigger trace.TriggerType, messageID string) {
	t, err := e.tracer.Start(ctx, trace.StartParams{
		Direction:       trace.DirectionOutbound,
		TriggerType:     trigger,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		OrgID:           event.OrgID,
		EventID:         event.ID,
		MessageID:       messageID,
	})
	if err != nil {
		return
	}
	t.Skip(ctx, "condition_false")
}

func (e *Engine) recordGateFailure(ctx context.Context, event *models.Event, in *config.Integration, trigger trace.TriggerType, messageID string, err error) {
	t, terr := e.tracer.Start(ctx, trace.StartParams{
		Direction:       trace.DirectionOutbound,
		TriggerType:     trigger,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		OrgID:           event.OrgID,
		EventID:         event.ID,
		MessageID:       messageID,
	})
	if terr != nil {
		return
	}
	t.Fail(ctx, string(KindCondition), err.Error())
}

// wrapPayload stores arbitrary transformed bodies under a stable key so the
// DLQ payload column is always a JSON object.
func wrapPayload(body interface{}) map[string]interface{} {
	if m, ok := body.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{"__body": body}
}

func unwrapPayload(payload map[string]interface{}) interface{} {
	if v, ok := payload["__body"]; ok && len(payload) == 1 {
		return v
	}
	return payload
}

func retryReason(de *Error) string {
	if de == nil {
		return ""
	}
	if de.Kind.Retryable() {
		return string(de.Kind)
	}
	return ""
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}

func retryAfterOf(de *Error) time.Duration {
	if de == nil {
		return 0
	}
	return de.retryAfter
}
