package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensitiveKey(t *testing.T) {
	sensitive := []string{
		"password", "Password", "DB_PASSWORD",
		"secret", "client_secret",
		"token", "X-Token", "access_token",
		"key", "api_key", "Api-Key",
		"Authorization", "authorization",
		"credential", "aws_credentials",
	}
	for _, k := range sensitive {
		assert.True(t, SensitiveKey(k), "expected %q to be sensitive", k)
	}

	benign := []string{"content-type", "user-agent", "org_id", "event_type", "accept"}
	for _, k := range benign {
		assert.False(t, SensitiveKey(k), "expected %q to be benign", k)
	}
}

func TestRedactString(t *testing.T) {
	s := NewService()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bearer token",
			in:   "sent Authorization: Bearer abc123.def-456",
			want: "sent Authorization: " + Redacted,
		},
		{
			name: "basic auth",
			in:   "header Basic dXNlcjpwYXNz",
			want: "header " + Redacted,
		},
		{
			name: "api key pair",
			in:   `{"api_key": "sk-live-12345"}`,
			want: `{"` + Redacted + `"}`,
		},
		{
			name: "connection string password",
			in:   "mysql://host?user=app&password=hunter2&timeout=5s",
			want: "mysql://host?user=app&" + Redacted + "&timeout=5s",
		},
		{
			name: "clean text untouched",
			in:   "delivery succeeded in 120ms",
			want: "delivery succeeded in 120ms",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.RedactString(tt.in))
		})
	}
}

func TestRedactHeaders(t *testing.T) {
	s := NewService()

	in := map[string]string{
		"Authorization": "Bearer abc",
		"X-Api-Key":     "sk-123",
		"Content-Type":  "application/json",
	}
	out := s.RedactHeaders(in)

	assert.Equal(t, Redacted, out["Authorization"])
	assert.Equal(t, Redacted, out["X-Api-Key"])
	assert.Equal(t, "application/json", out["Content-Type"])

	// Input must not be mutated.
	assert.Equal(t, "Bearer abc", in["Authorization"])

	assert.Nil(t, s.RedactHeaders(nil))
}

func TestRedactMapDeepWalk(t *testing.T) {
	s := NewService()

	in := map[string]interface{}{
		"order_id": "o-1",
		"password": "hunter2",
		"nested": map[string]interface{}{
			"api_token": "tok-999",
			"amount":    42.5,
		},
		"items": []interface{}{
			map[string]interface{}{"secret": "s1", "sku": "A"},
			"note with Bearer abc123",
			7,
		},
	}

	out := s.RedactMap(in)

	assert.Equal(t, "o-1", out["order_id"])
	assert.Equal(t, Redacted, out["password"])

	nested := out["nested"].(map[string]interface{})
	assert.Equal(t, Redacted, nested["api_token"])
	assert.Equal(t, 42.5, nested["amount"])

	items := out["items"].([]interface{})
	first := items[0].(map[string]interface{})
	assert.Equal(t, Redacted, first["secret"])
	assert.Equal(t, "A", first["sku"])
	assert.Equal(t, "note with "+Redacted, items[1])
	assert.Equal(t, 7, items[2])

	// Original payload is left intact.
	assert.Equal(t, "hunter2", in["password"])
	assert.Nil(t, s.RedactMap(nil))
}
