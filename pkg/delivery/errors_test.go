package delivery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relayforge/relayforge/pkg/sandbox"
	"github.com/relayforge/relayforge/pkg/transform"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{200, ""},
		{201, ""},
		{204, ""},
		{400, KindHTTPClient},
		{401, KindHTTPClient},
		{404, KindHTTPClient},
		{408, KindHTTPTransient},
		{425, KindHTTPTransient},
		{429, KindHTTPTransient},
		{500, KindHTTPTransient},
		{502, KindHTTPTransient},
		{503, KindHTTPTransient},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, classifyStatus(tt.status))
		})
	}
}

func TestClassify_TransportErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: KindTimeout,
		},
		{
			name: "dns failure",
			err:  &net.DNSError{Err: "no such host", Name: "missing.example.com"},
			want: KindNetwork,
		},
		{
			name: "connection refused",
			err:  &net.OpError{Op: "dial", Err: errors.New("connection refused")},
			want: KindNetwork,
		},
		{
			name: "unknown error",
			err:  errors.New("something else"),
			want: KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err).Kind)
		})
	}
}

func TestClassify_SandboxAndTransformErrors(t *testing.T) {
	scriptTimeout := &sandbox.Error{Kind: sandbox.KindTimeout, Err: errors.New("interrupted")}
	assert.Equal(t, KindScriptTimeout, Classify(scriptTimeout).Kind)

	runtimeErr := &sandbox.Error{Kind: sandbox.KindRuntime, Err: errors.New("boom")}
	assert.Equal(t, KindTransformation, Classify(runtimeErr).Kind)

	tErr := &transform.ErrTransformation{Err: errors.New("bad mapping")}
	assert.Equal(t, KindTransformation, Classify(tErr).Kind)
}

func TestClassify_PassesThroughClassified(t *testing.T) {
	original := &Error{Kind: KindURLBlocked, Err: errors.New("blocked")}
	assert.Same(t, original, Classify(fmt.Errorf("wrapped: %w", original)))
}

func TestErrorKind_Retryable(t *testing.T) {
	// TLS counts as transport trouble: a handshake failure can clear when the
	// endpoint finishes a certificate rotation.
	retryable := []ErrorKind{KindNetwork, KindTimeout, KindTLS, KindHTTPTransient, KindAuth, KindCircuitOpen}
	for _, k := range retryable {
		assert.True(t, k.Retryable(), string(k))
	}

	terminal := []ErrorKind{KindHTTPClient, KindTransformation, KindScriptTimeout, KindCondition, KindURLBlocked, KindInternal}
	for _, k := range terminal {
		assert.False(t, k.Retryable(), string(k))
	}
}
