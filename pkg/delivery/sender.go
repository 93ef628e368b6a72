package delivery

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Result is the outcome of one physical HTTP attempt.
type Result struct {
	StatusCode int
	Headers    http.Header
	Body       []byte // truncated to the configured cap
	Truncated  bool
	Latency    time.Duration

	// RetryAfter is the parsed Retry-After hint, zero when absent.
	RetryAfter time.Duration
}

// SendRequest is a fully prepared outbound request.
type SendRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte

	// Client overrides the default client (OAUTH1 signing transport).
	Client *http.Client

	Timeout time.Duration
}

// Sender executes prepared requests and classifies outcomes.
type Sender struct {
	client           *http.Client
	maxResponseBytes int
}

// NewSender creates a sender. maxResponseBytes caps the stored body snapshot.
func NewSender(client *http.Client, maxResponseBytes int) *Sender {
	if client == nil {
		client = &http.Client{}
	}
	if maxResponseBytes <= 0 {
		maxResponseBytes = 100 * 1024
	}
	return &Sender{client: client, maxResponseBytes: maxResponseBytes}
}

// Send performs the request. Non-2xx responses return both the result and a
// classified error so callers can log the response snapshot.
func (s *Sender) Send(ctx context.Context, req SendRequest) (*Result, *Error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if req.Timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, req.Method, req.URL, body)
	if err != nil {
		return nil, newError(KindInternal, err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("Content-Type") == "" && len(req.Body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	client := s.client
	if req.Client != nil {
		client = req.Client
	}

	start := time.Now()
	resp, err := client.Do(httpReq)
	latency := time.Since(start)
	if err != nil {
		de := Classify(err)
		return &Result{Latency: latency}, de
	}
	defer resp.Body.Close()

	snapshot, readErr := io.ReadAll(io.LimitReader(resp.Body, int64(s.maxResponseBytes)+1))
	truncated := false
	if len(snapshot) > s.maxResponseBytes {
		snapshot = snapshot[:s.maxResponseBytes]
		truncated = true
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	result := &Result{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       snapshot,
		Truncated:  truncated,
		Latency:    latency,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}

	if kind := classifyStatus(resp.StatusCode); kind != "" {
		return result, &Error{
			Kind:       kind,
			StatusCode: resp.StatusCode,
			Err:        statusError(resp.StatusCode),
		}
	}
	if readErr != nil {
		// 2xx with a broken body still counts as delivered; the snapshot is
		// diagnostics only.
		result.Truncated = true
	}
	return result, nil
}

// parseRetryAfter handles delta-seconds and HTTP-date forms.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

type statusError int

func (s statusError) Error() string {
	return "endpoint returned status " + strconv.Itoa(int(s))
}
