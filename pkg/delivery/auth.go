package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dghubble/oauth1"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/transform"
)

// tokenEarlyExpiry refreshes cached tokens this long before they expire.
const tokenEarlyExpiry = 30 * time.Second

// Authenticator applies integration auth to outbound requests. OAuth token
// sources and custom tokens are cached per integration.
type Authenticator struct {
	httpClient *http.Client

	mu            sync.Mutex
	oauth2Sources map[string]oauth2.TokenSource
	customTokens  map[string]*customToken
	fetchLocks    map[string]*sync.Mutex
}

type customToken struct {
	value     string
	expiresAt time.Time // zero when the endpoint reports no expiry
}

// NewAuthenticator creates an authenticator. The client is used for token
// endpoint calls.
func NewAuthenticator(client *http.Client) *Authenticator {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Authenticator{
		httpClient:    client,
		oauth2Sources: make(map[string]oauth2.TokenSource),
		customTokens:  make(map[string]*customToken),
		fetchLocks:    make(map[string]*sync.Mutex),
	}
}

// Apply sets auth headers on req. For OAUTH1 it returns a signing client that
// must be used to send the request; all other types return nil.
func (a *Authenticator) Apply(ctx context.Context, req *http.Request, integrationID string, auth *config.Auth, tctx transform.Context) (*http.Client, error) {
	if auth == nil || auth.Type == config.AuthNone {
		return nil, nil
	}

	switch auth.Type {
	case config.AuthAPIKey:
		header := auth.HeaderName
		if header == "" {
			header = "X-API-Key"
		}
		req.Header.Set(header, transform.SubstituteString(auth.APIKey, tctx))
		return nil, nil

	case config.AuthBasic:
		req.SetBasicAuth(
			transform.SubstituteString(auth.Username, tctx),
			transform.SubstituteString(auth.Password, tctx))
		return nil, nil

	case config.AuthBearer:
		req.Header.Set("Authorization", "Bearer "+transform.SubstituteString(auth.Token, tctx))
		return nil, nil

	case config.AuthCustomHeaders:
		for _, h := range auth.Headers {
			req.Header.Set(h.Key, transform.SubstituteString(h.Value, tctx))
		}
		return nil, nil

	case config.AuthOAuth2:
		token, err := a.oauth2Token(ctx, integrationID, auth)
		if err != nil {
			return nil, newError(KindAuth, err)
		}
		token.SetAuthHeader(req)
		return nil, nil

	case config.AuthCustom:
		token, err := a.customTokenValue(ctx, integrationID, auth, tctx)
		if err != nil {
			return nil, newError(KindAuth, err)
		}
		header := auth.TokenHeaderName
		if header == "" {
			header = "Authorization"
		}
		req.Header.Set(header, auth.TokenPrefix+token)
		return nil, nil

	case config.AuthOAuth1:
		cfg := oauth1.NewConfig(auth.ConsumerKey, auth.ConsumerSecret)
		if auth.Realm != "" {
			cfg.Realm = auth.Realm
		}
		token := oauth1.NewToken(auth.AccessToken, auth.TokenSecret)
		return cfg.Client(ctx, token), nil

	default:
		return nil, newError(KindAuth, fmt.Errorf("unknown auth type %q", auth.Type))
	}
}

// oauth2Token returns a cached client-credentials token, fetching when absent
// or near expiry.
func (a *Authenticator) oauth2Token(ctx context.Context, integrationID string, auth *config.Auth) (*oauth2.Token, error) {
	a.mu.Lock()
	source, ok := a.oauth2Sources[integrationID]
	if !ok {
		cfg := &clientcredentials.Config{
			TokenURL:     auth.TokenURL,
			ClientID:     auth.ClientID,
			ClientSecret: auth.ClientSecret,
			Scopes:       auth.Scopes,
		}
		tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, a.httpClient)
		source = oauth2.ReuseTokenSourceWithExpiry(nil, cfg.TokenSource(tokenCtx), tokenEarlyExpiry)
		a.oauth2Sources[integrationID] = source
	}
	a.mu.Unlock()

	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("fetching OAuth2 token: %w", err)
	}
	return token, nil
}

// customTokenValue returns the cached custom token, calling the configured
// token endpoint when absent or expired. Fetches for one integration are
// serialized so concurrent deliveries share a single endpoint call, the way
// ReuseTokenSource does for OAuth2.
func (a *Authenticator) customTokenValue(ctx context.Context, integrationID string, auth *config.Auth, tctx transform.Context) (string, error) {
	lock := a.fetchLock(integrationID)
	lock.Lock()
	defer lock.Unlock()

	a.mu.Lock()
	cached, ok := a.customTokens[integrationID]
	a.mu.Unlock()
	if ok && (cached.expiresAt.IsZero() || time.Now().Before(cached.expiresAt)) {
		return cached.value, nil
	}

	token, expiresAt, err := a.fetchCustomToken(ctx, auth, tctx)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.customTokens[integrationID] = &customToken{value: token, expiresAt: expiresAt}
	a.mu.Unlock()
	return token, nil
}

func (a *Authenticator) fetchLock(integrationID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	l, ok := a.fetchLocks[integrationID]
	if !ok {
		l = &sync.Mutex{}
		a.fetchLocks[integrationID] = l
	}
	return l
}

func (a *Authenticator) fetchCustomToken(ctx context.Context, auth *config.Auth, tctx transform.Context) (string, time.Time, error) {
	method := auth.TokenMethod
	if method == "" {
		method = http.MethodPost
	}

	var body io.Reader
	if len(auth.TokenBody) > 0 {
		encoded, err := json.Marshal(transform.Substitute(auth.TokenBody, tctx))
		if err != nil {
			return "", time.Time{}, fmt.Errorf("encoding token request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, auth.TokenEndpoint, body)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("building token request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("calling token endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", time.Time{}, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var parsed map[string]interface{}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return "", time.Time{}, fmt.Errorf("decoding token response: %w", err)
	}

	tokenPath := auth.TokenPath
	if tokenPath == "" {
		tokenPath = "token"
	}
	value, found := lookupJSONPath(parsed, tokenPath)
	if !found {
		return "", time.Time{}, fmt.Errorf("token response missing field %q", tokenPath)
	}
	token, ok := value.(string)
	if !ok || token == "" {
		return "", time.Time{}, fmt.Errorf("token field %q is not a string", tokenPath)
	}

	var expiresAt time.Time
	if raw, found := lookupJSONPath(parsed, "expires_in"); found {
		if seconds, ok := raw.(float64); ok && seconds > 0 {
			ttl := time.Duration(seconds) * time.Second
			if ttl > tokenEarlyExpiry {
				ttl -= tokenEarlyExpiry
			}
			expiresAt = time.Now().Add(ttl)
		}
	}

	return token, expiresAt, nil
}

// lookupJSONPath resolves a dotted path into a decoded JSON document.
func lookupJSONPath(m map[string]interface{}, path string) (interface{}, bool) {
	var cur interface{} = m
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
