package delivery

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/relayforge/relayforge/pkg/breaker"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/trace"
	"github.com/relayforge/relayforge/pkg/transform"
)

// ProxyRequest is a client-app request forwarded through an inbound
// integration to its external target.
type ProxyRequest struct {
	Integration *config.Integration
	OrgID       string
	Method      string
	Body        []byte
}

// Proxy forwards a request through an inbound integration: templated URL and
// headers, resolved auth, optional signing, then the upstream call. The
// upstream response is returned to the caller; a trace records the exchange
// with direction inbound.
func (e *Engine) Proxy(ctx context.Context, p ProxyRequest) (*Result, error) {
	in := p.Integration

	tctx := transform.Context{
		OrgID:           p.OrgID,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		Now:             time.Now(),
	}

	t, err := e.tracer.Start(ctx, trace.StartParams{
		Direction:       trace.DirectionInbound,
		TriggerType:     trace.TriggerProxy,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		OrgID:           p.OrgID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start proxy trace: %w", err)
	}

	targetURL := transform.SubstituteString(in.TargetURL, tctx)
	if _, de := e.policy.Validate(targetURL); de != nil {
		t.Fail(ctx, string(de.Kind), de.Error())
		return nil, de
	}

	method := p.Method
	if method == "" {
		method = in.HTTPMethod
	}
	if method == "" {
		method = http.MethodPost
	}
	headers := transform.SubstituteHeaders(in.Headers, tctx)
	if headers == nil {
		headers = make(map[string]string)
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, nil)
	if err != nil {
		de := newError(KindInternal, err)
		t.Fail(ctx, string(de.Kind), de.Error())
		return nil, de
	}
	client, aerr := e.auth.Apply(ctx, req, in.ID, in.Auth, tctx)
	if aerr != nil {
		de := Classify(aerr)
		t.Fail(ctx, string(de.Kind), de.Error())
		return nil, de
	}
	for k := range req.Header {
		headers[k] = req.Header.Get(k)
	}

	if in.Signing != nil && len(in.Signing.Secrets) > 0 {
		headers[SignatureHeader(in.Signing)] = Sign(p.Body, in.Signing)
	}

	t.SetRequest(map[string]interface{}{
		"method":  method,
		"url":     targetURL,
		"headers": headers,
	})

	if !e.breakers.Allow(in.ID) {
		t.Skip(ctx, "circuit_open")
		return nil, &Error{Kind: KindCircuitOpen, Err: breaker.ErrCircuitOpen}
	}

	var result *Result
	var sendErr *Error
	start := time.Now()
	execErr := e.breakers.Execute(ctx, in.ID, func() error {
		result, sendErr = e.sender.Send(ctx, SendRequest{
			Method:  method,
			URL:     targetURL,
			Headers: headers,
			Body:    p.Body,
			Client:  client,
			Timeout: in.Timeout(e.cfg.DefaultTimeout),
		})
		if sendErr != nil {
			return sendErr
		}
		return nil
	})
	elapsed := time.Since(start)

	if execErr == breaker.ErrCircuitOpen {
		t.Skip(ctx, "circuit_open")
		return nil, &Error{Kind: KindCircuitOpen, Err: execErr}
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
	t.Attempt(ctx, 1, attemptStatus, status, elapsed, errMsg, "")

	if result != nil && result.StatusCode > 0 {
		t.SetResponse(map[string]interface{}{
			"status":    result.StatusCode,
			"headers":   flattenHeaders(result.Headers),
			"body":      string(result.Body),
			"truncated": result.Truncated,
		})
	}

	if sendErr != nil {
		t.Fail(ctx, string(sendErr.Kind), sendErr.Error())
		return result, sendErr
	}
	t.Succeed(ctx)
	return result, nil
}
