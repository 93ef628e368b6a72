package config

import (
	"sort"
	"sync"
	"time"
)

// FieldMapping is one entry of a SIMPLE transformation.
type FieldMapping struct {
	SourceField  string `yaml:"source_field" validate:"required"`
	TargetField  string `yaml:"target_field" validate:"required"`
	Transform    string `yaml:"transform"` // none|trim|upper|lower|date|default
	DefaultValue string `yaml:"default_value"`
	DateFormat   string `yaml:"date_format"` // Go layout, used with transform=date
}

// StaticField is a constant key/value emitted by a SIMPLE transformation.
type StaticField struct {
	Key   string `yaml:"key" validate:"required"`
	Value string `yaml:"value"`
}

// Transformation is the tagged transformation variant.
type Transformation struct {
	Mode         TransformMode  `yaml:"mode"`
	Script       string         `yaml:"script"`
	Mappings     []FieldMapping `yaml:"mappings"`
	StaticFields []StaticField  `yaml:"static_fields"`
}

// Auth is the tagged auth variant. Which fields are required depends on Type;
// validated at load.
type Auth struct {
	Type AuthType `yaml:"type"`

	// API_KEY
	HeaderName string `yaml:"header_name"`
	APIKey     string `yaml:"api_key"`

	// BASIC
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// BEARER
	Token string `yaml:"token"`

	// OAUTH1
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
	AccessToken    string `yaml:"access_token"`
	TokenSecret    string `yaml:"token_secret"`
	Realm          string `yaml:"realm"`

	// OAUTH2 client credentials
	TokenURL     string   `yaml:"token_url"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	Scopes       []string `yaml:"scopes"`

	// CUSTOM token endpoint
	TokenEndpoint   string                 `yaml:"token_endpoint"`
	TokenMethod     string                 `yaml:"token_method"` // POST (default) or GET
	TokenBody       map[string]interface{} `yaml:"token_body"`
	TokenPath       string                 `yaml:"token_path"`        // dotted path into the JSON response
	TokenHeaderName string                 `yaml:"token_header_name"` // default Authorization
	TokenPrefix     string                 `yaml:"token_prefix"`      // e.g. "Bearer "

	// CUSTOM_HEADERS
	Headers []StaticField `yaml:"headers"`
}

// Signing configures HMAC request signing with key rotation.
type Signing struct {
	Header  string   `yaml:"header"` // default X-Signature
	Secrets []string `yaml:"secrets" validate:"min=1"`
}

// Action is a single HTTP request within a multi-action integration.
type Action struct {
	Name           string            `yaml:"name"`
	TargetURL      string            `yaml:"target_url" validate:"required"`
	HTTPMethod     string            `yaml:"http_method"`
	Headers        map[string]string `yaml:"headers"`
	Condition      string            `yaml:"condition"` // sandbox boolean over {event, context}
	OnError        OnError           `yaml:"on_error"`  // CONTINUE (default) | STOP
	Transformation *Transformation   `yaml:"transformation"`
	Auth           *Auth             `yaml:"auth"`
	Signing        *Signing          `yaml:"signing"`
}

// Integration is one per-tenant delivery rule.
type Integration struct {
	ID               string            `yaml:"id" validate:"required"`
	OrgID            string            `yaml:"org_id" validate:"required"`
	OrgUnitID        string            `yaml:"org_unit_id"`
	Name             string            `yaml:"name" validate:"required"`
	Direction        Direction         `yaml:"direction"`
	EventType        string            `yaml:"event_type"` // exact type or '*'
	Scope            Scope             `yaml:"scope"`
	ExcludedOrgUnits []string          `yaml:"excluded_org_unit_ids"`
	TargetURL        string            `yaml:"target_url"`
	HTTPMethod       string            `yaml:"http_method"`
	Headers          map[string]string `yaml:"headers"`
	Auth             *Auth             `yaml:"auth"`
	TimeoutMs        int               `yaml:"timeout_ms"`
	RetryCount       *int              `yaml:"retry_count"` // nil → retry default; 0 is a valid value
	Transformation   *Transformation   `yaml:"transformation"`
	Actions          []Action          `yaml:"actions"`
	Condition        string            `yaml:"condition"` // gates the whole integration
	DeliveryMode     DeliveryMode      `yaml:"delivery_mode"`
	SchedulingScript string            `yaml:"scheduling_script"`
	Signing          *Signing          `yaml:"signing"`
	IsActive         bool              `yaml:"is_active"`
	UpdatedAt        time.Time         `yaml:"updated_at"`

	// INBOUND proxy settings
	ProxyPath string `yaml:"proxy_path"` // client-facing path the proxy listens on
}

// MultiAction reports whether the integration declares an action list.
func (i *Integration) MultiAction() bool {
	return len(i.Actions) > 0
}

// Timeout returns the per-request deadline, falling back to def.
func (i *Integration) Timeout(def time.Duration) time.Duration {
	if i.TimeoutMs <= 0 {
		return def
	}
	d := time.Duration(i.TimeoutMs) * time.Millisecond
	if d < time.Second {
		return time.Second
	}
	if d > 60*time.Second {
		return 60 * time.Second
	}
	return d
}

// MaxAttempts returns the retry budget (attempts beyond the first), falling
// back to def. Bounds 0–10.
func (i *Integration) MaxAttempts(def int) int {
	n := def
	if i.RetryCount != nil {
		n = *i.RetryCount
	}
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// IntegrationRegistry holds loaded integrations with mutable activation state.
// Reads vastly outnumber writes; guarded by an RWMutex.
type IntegrationRegistry struct {
	mu           sync.RWMutex
	integrations map[string]*Integration
}

// NewIntegrationRegistry creates a registry from loaded definitions.
func NewIntegrationRegistry(defs []*Integration) *IntegrationRegistry {
	m := make(map[string]*Integration, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return &IntegrationRegistry{integrations: m}
}

// Get retrieves an integration by ID.
func (r *IntegrationRegistry) Get(id string) (*Integration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.integrations[id]
	if !ok {
		return nil, ErrIntegrationNotFound
	}
	return i, nil
}

// All returns every integration, ordered by UpdatedAt descending then ID for
// deterministic matching.
func (r *IntegrationRegistry) All() []*Integration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Integration, 0, len(r.integrations))
	for _, i := range r.integrations {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].UpdatedAt.Equal(out[b].UpdatedAt) {
			return out[a].UpdatedAt.After(out[b].UpdatedAt)
		}
		return out[a].ID < out[b].ID
	})
	return out
}

// ByProxyPath resolves an active inbound integration by its client-facing
// proxy path.
func (r *IntegrationRegistry) ByProxyPath(path string) (*Integration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.integrations {
		if i.Direction == DirectionInbound && i.IsActive && i.ProxyPath == path {
			return i, nil
		}
	}
	return nil, ErrIntegrationNotFound
}

// Len returns the number of registered integrations.
func (r *IntegrationRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.integrations)
}

// Deactivate flips an integration inactive (circuit auto-disable policy).
// Returns false when the ID is unknown. The stored value is replaced with a
// copy rather than mutated: callers hold pointers returned by Get/All and
// read IsActive without the registry lock.
func (r *IntegrationRegistry) Deactivate(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.integrations[id]
	if !ok {
		return false
	}
	inactive := *i
	inactive.IsActive = false
	r.integrations[id] = &inactive
	return true
}
