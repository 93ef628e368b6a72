package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOutbound(id string) *Integration {
	return &Integration{
		ID:        id,
		OrgID:     "org-1",
		Name:      id,
		Direction: DirectionOutbound,
		EventType: "order.created",
		TargetURL: "https://example.com/hook",
	}
}

func TestValidateAllAcceptsValidDefinitions(t *testing.T) {
	err := validateAll(
		[]*Integration{validOutbound("int-1"), validOutbound("int-2")},
		[]*Source{{
			ID: "src-1", OrgID: "org-1", Type: SourceHTTP, URL: "https://example.com/events",
			Columns: ColumnMapping{ID: "id", OrgID: "org_id", EventType: "type", Payload: "data"},
		}},
		[]*AlertChannel{{
			ID: "ch-1", OrgID: "org-1", Channel: "SLACK", Provider: "API",
			SlackToken: "xoxb-1", SlackChannel: "#alerts",
		}},
	)
	require.NoError(t, err)
}

func TestValidateIntegrationRejectsDuplicateID(t *testing.T) {
	err := validateAll([]*Integration{validOutbound("int-1"), validOutbound("int-1")}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestValidateIntegrationVariants(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Integration)
		errPart string
	}{
		{
			name:    "unknown direction",
			mutate:  func(i *Integration) { i.Direction = "SIDEWAYS" },
			errPart: "direction",
		},
		{
			name:    "outbound without event_type",
			mutate:  func(i *Integration) { i.EventType = "" },
			errPart: "event_type",
		},
		{
			name:    "outbound without target_url",
			mutate:  func(i *Integration) { i.TargetURL = "" },
			errPart: "target_url",
		},
		{
			name: "inbound without proxy_path",
			mutate: func(i *Integration) {
				i.Direction = DirectionInbound
				i.ProxyPath = ""
			},
			errPart: "proxy_path",
		},
		{
			name: "delayed without scheduling script",
			mutate: func(i *Integration) {
				i.DeliveryMode = DeliveryDelayed
			},
			errPart: "scheduling_script",
		},
		{
			name: "recurring without scheduling script",
			mutate: func(i *Integration) {
				i.DeliveryMode = DeliveryRecurring
			},
			errPart: "scheduling_script",
		},
		{
			name: "signing without secrets",
			mutate: func(i *Integration) {
				i.Signing = &Signing{Header: "X-Signature"}
			},
			// validator's nested struct check reports the field itself
			errPart: "Secrets",
		},
		{
			name: "action without target_url",
			mutate: func(i *Integration) {
				i.TargetURL = ""
				i.Actions = []Action{{Name: "first"}}
			},
			errPart: "actions[0].target_url",
		},
		{
			name: "action with bad on_error",
			mutate: func(i *Integration) {
				i.TargetURL = ""
				i.Actions = []Action{{Name: "first", TargetURL: "https://a.example", OnError: "RETRY"}}
			},
			errPart: "on_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := validOutbound("int-x")
			tt.mutate(i)
			err := validateAll([]*Integration{i}, nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestValidateIntegrationMultiActionNeedsNoTopLevelURL(t *testing.T) {
	i := validOutbound("int-multi")
	i.TargetURL = ""
	i.Actions = []Action{
		{Name: "create", TargetURL: "https://a.example/create"},
		{Name: "notify", TargetURL: "https://a.example/notify", OnError: OnErrorStop},
	}
	require.NoError(t, validateAll([]*Integration{i}, nil, nil))
}

func TestValidateAuth(t *testing.T) {
	tests := []struct {
		name string
		auth *Auth
		ok   bool
	}{
		{"none", &Auth{Type: AuthNone}, true},
		{"api key complete", &Auth{Type: AuthAPIKey, HeaderName: "X-Api-Key", APIKey: "k"}, true},
		{"api key missing header", &Auth{Type: AuthAPIKey, APIKey: "k"}, false},
		{"api key missing key", &Auth{Type: AuthAPIKey, HeaderName: "X-Api-Key"}, false},
		{"basic complete", &Auth{Type: AuthBasic, Username: "u", Password: "p"}, true},
		{"basic missing username", &Auth{Type: AuthBasic, Password: "p"}, false},
		{"bearer complete", &Auth{Type: AuthBearer, Token: "t"}, true},
		{"bearer missing token", &Auth{Type: AuthBearer}, false},
		{"oauth1 complete", &Auth{Type: AuthOAuth1, ConsumerKey: "ck", ConsumerSecret: "cs"}, true},
		{"oauth1 missing secret", &Auth{Type: AuthOAuth1, ConsumerKey: "ck"}, false},
		{"oauth2 complete", &Auth{Type: AuthOAuth2, TokenURL: "https://idp/token", ClientID: "c", ClientSecret: "s"}, true},
		{"oauth2 missing token_url", &Auth{Type: AuthOAuth2, ClientID: "c", ClientSecret: "s"}, false},
		{"custom complete", &Auth{Type: AuthCustom, TokenEndpoint: "https://idp/token", TokenPath: "data.token"}, true},
		{"custom missing path", &Auth{Type: AuthCustom, TokenEndpoint: "https://idp/token"}, false},
		{"custom headers complete", &Auth{Type: AuthCustomHeaders, Headers: []StaticField{{Key: "X-K", Value: "v"}}}, true},
		{"custom headers empty", &Auth{Type: AuthCustomHeaders}, false},
		{"unknown type", &Auth{Type: "MAGIC"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAuth(tt.auth)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateTransformation(t *testing.T) {
	assert.NoError(t, validateTransformation(&Transformation{
		Mode:   TransformScript,
		Script: "function transform(p, c) { return p; }",
	}))
	assert.ErrorIs(t, validateTransformation(&Transformation{Mode: TransformScript}), ErrMissingRequiredField)

	assert.NoError(t, validateTransformation(&Transformation{
		Mode:     TransformSimple,
		Mappings: []FieldMapping{{SourceField: "a", TargetField: "b"}},
	}))
	assert.ErrorIs(t, validateTransformation(&Transformation{Mode: TransformSimple}), ErrMissingRequiredField)

	err := validateTransformation(&Transformation{
		Mode:     TransformSimple,
		Mappings: []FieldMapping{{SourceField: "a", TargetField: "b", Transform: "reverse"}},
	})
	assert.ErrorIs(t, err, ErrInvalidValue)

	assert.Error(t, validateTransformation(&Transformation{Mode: "FANCY"}))
}

func TestValidateSource(t *testing.T) {
	columns := ColumnMapping{ID: "id", OrgID: "org_id", EventType: "type", Payload: "data"}

	tests := []struct {
		name string
		src  *Source
		ok   bool
	}{
		{
			"mysql complete",
			&Source{ID: "s", OrgID: "o", Type: SourceMySQL, ConnectionString: "dsn", Table: "outbox", Columns: columns},
			true,
		},
		{
			"mysql missing table",
			&Source{ID: "s", OrgID: "o", Type: SourceMySQL, ConnectionString: "dsn", Columns: columns},
			false,
		},
		{
			"mongo complete",
			&Source{ID: "s", OrgID: "o", Type: SourceMongo, ConnectionString: "mongodb://x", Database: "db", Collection: "events", Columns: columns},
			true,
		},
		{
			"mongo missing collection",
			&Source{ID: "s", OrgID: "o", Type: SourceMongo, ConnectionString: "mongodb://x", Database: "db", Columns: columns},
			false,
		},
		{
			"http complete",
			&Source{ID: "s", OrgID: "o", Type: SourceHTTP, URL: "https://x/events", Columns: columns},
			true,
		},
		{
			"http missing url",
			&Source{ID: "s", OrgID: "o", Type: SourceHTTP, Columns: columns},
			false,
		},
		{
			"unknown type",
			&Source{ID: "s", OrgID: "o", Type: "KAFKA", URL: "x", Columns: columns},
			false,
		},
		{
			"pool size out of bounds",
			&Source{ID: "s", OrgID: "o", Type: SourceHTTP, URL: "https://x", Columns: columns, PoolSize: 50},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSource(tt.src)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateAlertChannel(t *testing.T) {
	assert.NoError(t, validateAlertChannel(&AlertChannel{
		ID: "c", OrgID: "o", Channel: "EMAIL", Provider: "SMTP",
		SMTPHost: "mail.example.com", Recipients: []string{"ops@example.com"},
	}))

	err := validateAlertChannel(&AlertChannel{
		ID: "c", OrgID: "o", Channel: "EMAIL", Provider: "SMTP",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp_host/recipients")

	err = validateAlertChannel(&AlertChannel{
		ID: "c", OrgID: "o", Channel: "SLACK", Provider: "API", SlackToken: "xoxb-1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slack_token/slack_channel")

	err = validateAlertChannel(&AlertChannel{
		ID: "c", OrgID: "o", Channel: "PAGER", Provider: "DUTY",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
