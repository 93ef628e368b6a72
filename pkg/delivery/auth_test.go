package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/transform"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://api.example.com/hook", nil)
	require.NoError(t, err)
	return req
}

func TestApply_HeaderVariants(t *testing.T) {
	a := NewAuthenticator(nil)
	tctx := transform.Context{Now: time.Now()}

	tests := []struct {
		name       string
		auth       *config.Auth
		wantHeader string
		wantValue  string
	}{
		{
			name:       "api key default header",
			auth:       &config.Auth{Type: config.AuthAPIKey, APIKey: "k-123"},
			wantHeader: "X-API-Key",
			wantValue:  "k-123",
		},
		{
			name:       "api key custom header",
			auth:       &config.Auth{Type: config.AuthAPIKey, HeaderName: "X-Token", APIKey: "k-123"},
			wantHeader: "X-Token",
			wantValue:  "k-123",
		},
		{
			name:       "bearer",
			auth:       &config.Auth{Type: config.AuthBearer, Token: "t-456"},
			wantHeader: "Authorization",
			wantValue:  "Bearer t-456",
		},
		{
			name: "custom headers",
			auth: &config.Auth{Type: config.AuthCustomHeaders, Headers: []config.StaticField{
				{Key: "X-Client", Value: "relayforge"},
			}},
			wantHeader: "X-Client",
			wantValue:  "relayforge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t)
			client, err := a.Apply(context.Background(), req, "int-1", tt.auth, tctx)
			require.NoError(t, err)
			assert.Nil(t, client)
			assert.Equal(t, tt.wantValue, req.Header.Get(tt.wantHeader))
		})
	}
}

func TestApply_Basic(t *testing.T) {
	a := NewAuthenticator(nil)
	req := newRequest(t)

	_, err := a.Apply(context.Background(), req, "int-1",
		&config.Auth{Type: config.AuthBasic, Username: "user", Password: "pass"},
		transform.Context{})
	require.NoError(t, err)

	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "user", user)
	assert.Equal(t, "pass", pass)
}

func TestApply_NoneAndNil(t *testing.T) {
	a := NewAuthenticator(nil)

	for _, auth := range []*config.Auth{nil, {Type: config.AuthNone}} {
		req := newRequest(t)
		client, err := a.Apply(context.Background(), req, "int-1", auth, transform.Context{})
		require.NoError(t, err)
		assert.Nil(t, client)
		assert.Empty(t, req.Header)
	}
}

func TestApply_OAuth1ReturnsSigningClient(t *testing.T) {
	a := NewAuthenticator(nil)
	req := newRequest(t)

	client, err := a.Apply(context.Background(), req, "int-1", &config.Auth{
		Type:           config.AuthOAuth1,
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		AccessToken:    "at",
		TokenSecret:    "ts",
	}, transform.Context{})

	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestApply_CustomTokenFetchAndCache(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "svc", body["client"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data":       map[string]interface{}{"access_token": "tok-789"},
			"expires_in": 3600,
		})
	}))
	defer server.Close()

	a := NewAuthenticator(server.Client())
	auth := &config.Auth{
		Type:          config.AuthCustom,
		TokenEndpoint: server.URL,
		TokenBody:     map[string]interface{}{"client": "svc"},
		TokenPath:     "data.access_token",
		TokenPrefix:   "Bearer ",
	}

	for i := 0; i < 3; i++ {
		req := newRequest(t)
		_, err := a.Apply(context.Background(), req, "int-1", auth, transform.Context{})
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-789", req.Header.Get("Authorization"))
	}

	assert.Equal(t, 1, calls, "token should be fetched once and cached")
}

func TestApply_CustomTokenConcurrentSingleFetch(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond) // hold the window open
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"token": "tok-1", "expires_in": 3600})
	}))
	defer server.Close()

	a := NewAuthenticator(server.Client())
	auth := &config.Auth{Type: config.AuthCustom, TokenEndpoint: server.URL}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := newRequest(t)
			_, err := a.Apply(context.Background(), req, "int-1", auth, transform.Context{})
			assert.NoError(t, err)
			assert.Equal(t, "tok-1", req.Header.Get("Authorization"))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent deliveries share one fetch")
}

func TestApply_CustomTokenMissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"unexpected": true})
	}))
	defer server.Close()

	a := NewAuthenticator(server.Client())
	req := newRequest(t)

	_, err := a.Apply(context.Background(), req, "int-1", &config.Auth{
		Type:          config.AuthCustom,
		TokenEndpoint: server.URL,
		TokenPath:     "token",
	}, transform.Context{})

	require.Error(t, err)
	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindAuth, de.Kind)
}

func TestApply_OAuth2(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"oat-1","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	a := NewAuthenticator(server.Client())
	auth := &config.Auth{
		Type:         config.AuthOAuth2,
		TokenURL:     server.URL,
		ClientID:     "cid",
		ClientSecret: "secret",
	}

	for i := 0; i < 2; i++ {
		req := newRequest(t)
		_, err := a.Apply(context.Background(), req, "int-1", auth, transform.Context{})
		require.NoError(t, err)
		assert.Equal(t, "Bearer oat-1", req.Header.Get("Authorization"))
	}

	assert.Equal(t, 1, calls, "token source should cache until expiry")
}
