package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Success(t *testing.T) {
	var gotBody string
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	s := NewSender(nil, 1024)
	result, err := s.Send(context.Background(), SendRequest{
		Method: http.MethodPost,
		URL:    server.URL,
		Body:   []byte(`{"amount":100}`),
	})

	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(result.Body))
	assert.Equal(t, `{"amount":100}`, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.False(t, result.Truncated)
}

func TestSend_ClientErrorIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	s := NewSender(nil, 1024)
	result, err := s.Send(context.Background(), SendRequest{Method: http.MethodPost, URL: server.URL})

	require.NotNil(t, err)
	assert.Equal(t, KindHTTPClient, err.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	assert.False(t, err.Kind.Retryable())
	assert.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
}

func TestSend_RateLimitedCarriesRetryAfter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	s := NewSender(nil, 1024)
	result, err := s.Send(context.Background(), SendRequest{Method: http.MethodPost, URL: server.URL})

	require.NotNil(t, err)
	assert.Equal(t, KindHTTPTransient, err.Kind)
	assert.True(t, err.Kind.Retryable())
	assert.Equal(t, 30*time.Second, result.RetryAfter)
}

func TestSend_TruncatesLargeResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 500)))
	}))
	defer server.Close()

	s := NewSender(nil, 100)
	result, err := s.Send(context.Background(), SendRequest{Method: http.MethodGet, URL: server.URL})

	require.Nil(t, err)
	assert.Len(t, result.Body, 100)
	assert.True(t, result.Truncated)
}

func TestSend_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	s := NewSender(nil, 1024)
	_, err := s.Send(context.Background(), SendRequest{
		Method:  http.MethodGet,
		URL:     server.URL,
		Timeout: 20 * time.Millisecond,
	})

	require.NotNil(t, err)
	assert.Equal(t, KindTimeout, err.Kind)
}

func TestSend_ConnectionRefused(t *testing.T) {
	s := NewSender(nil, 1024)
	_, err := s.Send(context.Background(), SendRequest{
		Method: http.MethodGet,
		URL:    "http://127.0.0.1:1/unreachable",
	})

	require.NotNil(t, err)
	assert.Equal(t, KindNetwork, err.Kind)
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, 45*time.Second, parseRetryAfter("45"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-5"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("garbage"))

	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	got := parseRetryAfter(future)
	assert.InDelta(t, (90 * time.Second).Seconds(), got.Seconds(), 2)
}
