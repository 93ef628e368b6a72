package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestInitializeDefaultsWhenDirEmpty(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Poller.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.Delivery.DefaultTimeout)
	assert.Equal(t, 3, cfg.Retry.DefaultMaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Shutdown.DrainWindow)

	stats := cfg.Stats()
	assert.Equal(t, 0, stats.Integrations)
	assert.Equal(t, 0, stats.Sources)
	assert.Equal(t, 0, stats.AlertChannels)
}

func TestInitializeLoadsAllFiles(t *testing.T) {
	t.Setenv("TEST_WEBHOOK_TOKEN", "tok-abc")

	dir := t.TempDir()
	writeConfig(t, dir, "gateway.yaml", `
poller:
  poll_interval: 10s
  batch_size: 25
delivery:
  default_timeout: 20s
  allow_insecure_local: true
`)
	writeConfig(t, dir, "integrations.yaml", `
integrations:
  - id: int-orders
    org_id: org-1
    name: orders-webhook
    direction: OUTBOUND
    event_type: order.created
    target_url: https://example.com/hook
    is_active: true
    auth:
      type: BEARER
      token: "{{.TEST_WEBHOOK_TOKEN}}"
`)
	writeConfig(t, dir, "sources.yaml", `
sources:
  - id: src-db
    org_id: org-1
    type: MYSQL
    connection_string: "user:pass@tcp(db:3306)/events"
    table: outbox
    columns:
      id: id
      org_id: org_id
      event_type: event_type
      payload: payload
`)
	writeConfig(t, dir, "alert_channels.yaml", `
alert_channels:
  - id: ch-mail
    org_id: org-1
    channel: EMAIL
    provider: SMTP
    smtp_host: mail.example.com
    recipients: ["ops@example.com"]
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Poller.PollInterval)
	assert.Equal(t, 25, cfg.Poller.BatchSize)
	assert.Equal(t, 20*time.Second, cfg.Delivery.DefaultTimeout)
	assert.True(t, cfg.Delivery.AllowInsecureLocal)
	// Sections absent from gateway.yaml keep defaults.
	assert.Equal(t, 3, cfg.Retry.DefaultMaxAttempts)

	integration, err := cfg.GetIntegration("int-orders")
	require.NoError(t, err)
	assert.Equal(t, DirectionOutbound, integration.Direction)
	assert.Equal(t, "tok-abc", integration.Auth.Token, "env var expanded into auth token")

	source, err := cfg.GetSource("src-db")
	require.NoError(t, err)
	assert.Equal(t, SourceMySQL, source.Type)
	assert.Equal(t, "outbox", source.Table)

	channels := cfg.AlertChannels.ForOrg("org-1")
	require.Len(t, channels, 1)
	assert.Equal(t, "EMAIL:SMTP", channels[0].Key())
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "gateway.yaml", "poller: [not: a: mapping\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.File, "gateway.yaml")
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "integrations.yaml", `
integrations:
  - id: int-broken
    org_id: org-1
    name: broken
    direction: OUTBOUND
    event_type: order.created
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "target_url")
}

func TestInitializeAppliesBounds(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "gateway.yaml", `
poller:
  poll_interval: 100ms
  batch_size: 100000
delivery:
  default_timeout: 5m
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Poller.PollInterval)
	assert.Equal(t, 100, cfg.Poller.BatchSize)
	assert.Equal(t, 60*time.Second, cfg.Delivery.DefaultTimeout)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_HOST", "db.internal")
	t.Setenv("EXPAND_PORT", "5432")

	out := ExpandEnv([]byte("addr: {{.EXPAND_HOST}}:{{.EXPAND_PORT}}"))
	assert.Equal(t, "addr: db.internal:5432", string(out))

	// Missing variables expand to empty; validation catches what matters.
	out = ExpandEnv([]byte("token: '{{.DEFINITELY_NOT_SET_ANYWHERE}}'"))
	assert.Equal(t, "token: ''", string(out))

	// $ in embedded scripts is left alone.
	raw := []byte(`script: "var total = amount$;"`)
	assert.Equal(t, raw, ExpandEnv(raw))
}
