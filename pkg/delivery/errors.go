package delivery

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/relayforge/relayforge/pkg/sandbox"
	"github.com/relayforge/relayforge/pkg/transform"
)

// ErrorKind classifies delivery failures for retry decisions, DLQ records,
// and alert digests.
type ErrorKind string

// ErrorKind values.
const (
	KindNetwork        ErrorKind = "NETWORK_ERROR"
	KindTimeout        ErrorKind = "TIMEOUT_ERROR"
	KindTLS            ErrorKind = "TLS_ERROR"
	KindHTTPClient     ErrorKind = "HTTP_CLIENT_ERROR"
	KindHTTPTransient  ErrorKind = "HTTP_TRANSIENT_ERROR"
	KindTransformation ErrorKind = "TRANSFORMATION_ERROR"
	KindScriptTimeout  ErrorKind = "SCRIPT_TIMEOUT"
	KindCondition      ErrorKind = "CONDITION_ERROR"
	KindAuth           ErrorKind = "AUTH_ERROR"
	KindURLBlocked     ErrorKind = "URL_BLOCKED"
	KindCircuitOpen    ErrorKind = "CIRCUIT_OPEN"
	KindInternal       ErrorKind = "INTERNAL_ERROR"
)

// Retryable reports whether failures of this kind may succeed on a later
// attempt. Deterministic failures (bad config, rejected payloads) never
// re-drive.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindNetwork, KindTimeout, KindTLS, KindHTTPTransient, KindAuth, KindCircuitOpen:
		return true
	}
	return false
}

// Error is a classified delivery failure.
type Error struct {
	Kind       ErrorKind
	StatusCode int // 0 when no HTTP response was received
	Err        error

	// retryAfter carries the endpoint's Retry-After hint to the retry
	// scheduler.
	retryAfter time.Duration
}

// Error returns the formatted message.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps err with a kind.
func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Classify maps an arbitrary failure to a delivery error. Already-classified
// errors pass through; transformation and sandbox failures keep their own
// kinds.
func Classify(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}

	var se *sandbox.Error
	if errors.As(err, &se) {
		if se.Kind == sandbox.KindTimeout {
			return newError(KindScriptTimeout, err)
		}
		return newError(KindTransformation, err)
	}

	var te *transform.ErrTransformation
	if errors.As(err, &te) {
		return newError(KindTransformation, err)
	}

	return newError(classifyTransport(err), err)
}

// classifyTransport inspects network-level failures.
func classifyTransport(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	var certErr *tls.CertificateVerificationError
	var recErr tls.RecordHeaderError
	if errors.As(err, &certErr) || errors.As(err, &recErr) {
		return KindTLS
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) {
		return KindNetwork
	}

	return KindInternal
}

// classifyStatus maps an HTTP response status. Success statuses return the
// zero kind.
func classifyStatus(status int) ErrorKind {
	switch {
	case status >= 200 && status < 300:
		return ""
	case status == 408, status == 425, status == 429:
		return KindHTTPTransient
	case status >= 400 && status < 500:
		return KindHTTPClient
	default:
		return KindHTTPTransient
	}
}
