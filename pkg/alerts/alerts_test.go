package alerts

import (
	"context"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/pkg/config"
)

func strptr(s string) *string { return &s }

func TestDigestSubjectAndBody(t *testing.T) {
	d := &Digest{
		OrgID:           "org-1",
		IntegrationID:   "int-1",
		IntegrationName: "billing-webhook",
		WindowStart:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		WindowEnd:       time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC),
		TotalFailures:   7,
		ByErrorKind:     map[string]int{"TIMEOUT_ERROR": 5, "HTTP_TRANSIENT_ERROR": 2},
		Samples: []Sample{
			{TraceID: "trace-a", ErrorKind: "TIMEOUT_ERROR", ErrorMessage: "context deadline exceeded", OccurredAt: time.Date(2026, 3, 1, 10, 3, 0, 0, time.UTC)},
		},
		DashboardURL: "https://ops.example.com",
	}

	assert.Equal(t, "[relayforge] 7 delivery failure(s) for billing-webhook", d.Subject())

	body := d.Body()
	assert.Contains(t, body, "Integration: billing-webhook (int-1)")
	assert.Contains(t, body, "Failures: 7")
	assert.Contains(t, body, "TIMEOUT_ERROR")
	assert.Contains(t, body, "trace: trace-a")
	assert.Contains(t, body, "https://ops.example.com/integrations/int-1/logs")
}

func TestAutoDisabledDigest(t *testing.T) {
	d := AutoDisabledDigest("org-1", "int-9", "crm-sync", 10, "https://ops.example.com")

	assert.Equal(t, "org-1", d.OrgID)
	assert.Equal(t, 10, d.TotalFailures)
	assert.Equal(t, 10, d.ByErrorKind["AUTO_DISABLED"])
	assert.Contains(t, d.Subject(), "crm-sync")
}

func TestAggregateGroupsPerIntegration(t *testing.T) {
	s := &Service{cfg: &config.AlertConfig{SampleLimit: 2, DashboardURL: "https://ops.example.com"}}

	now := time.Now()
	failures := []*ent.ExecutionLog{
		{ID: "t1", OrgID: "org-1", IntegrationID: "int-a", IntegrationName: "alpha", ErrorKind: strptr("TIMEOUT_ERROR"), ErrorMessage: strptr("timeout"), StartedAt: now},
		{ID: "t2", OrgID: "org-1", IntegrationID: "int-a", IntegrationName: "alpha", ErrorKind: strptr("TIMEOUT_ERROR"), ErrorMessage: strptr("timeout"), StartedAt: now},
		{ID: "t3", OrgID: "org-1", IntegrationID: "int-a", IntegrationName: "alpha", ErrorKind: strptr("NETWORK_ERROR"), ErrorMessage: strptr("refused"), StartedAt: now},
		{ID: "t4", OrgID: "org-2", IntegrationID: "int-b", IntegrationName: "beta", StartedAt: now},
	}

	digests := s.aggregate(failures, now.Add(-15*time.Minute), now)
	require.Len(t, digests, 2)

	alpha := digests[0]
	assert.Equal(t, "int-a", alpha.IntegrationID)
	assert.Equal(t, 3, alpha.TotalFailures)
	assert.Equal(t, 2, alpha.ByErrorKind["TIMEOUT_ERROR"])
	assert.Equal(t, 1, alpha.ByErrorKind["NETWORK_ERROR"])
	assert.Len(t, alpha.Samples, 2, "samples capped at the configured limit")
	assert.Equal(t, "https://ops.example.com", alpha.DashboardURL)

	beta := digests[1]
	assert.Equal(t, "org-2", beta.OrgID)
	assert.Equal(t, 1, beta.ByErrorKind["UNKNOWN"], "missing error kind falls back to UNKNOWN")
}

func TestSMTPAdapterSend(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	a := &SMTPAdapter{
		send: func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		},
	}

	ch := &config.AlertChannel{
		ID:         "ch-1",
		OrgID:      "org-1",
		Channel:    "EMAIL",
		Provider:   "SMTP",
		SMTPHost:   "mail.example.com",
		From:       "alerts@example.com",
		Recipients: []string{"ops@example.com", "oncall@example.com"},
	}
	d := &Digest{IntegrationID: "int-1", IntegrationName: "alpha", TotalFailures: 3, WindowStart: time.Now(), WindowEnd: time.Now()}

	resp, err := a.Send(context.Background(), ch, d)
	require.NoError(t, err)
	assert.Equal(t, "delivered to 2 recipient(s)", resp)
	assert.Equal(t, "mail.example.com:587", gotAddr, "port defaults to 587")
	assert.Equal(t, "alerts@example.com", gotFrom)
	assert.Equal(t, []string{"ops@example.com", "oncall@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: [relayforge] 3 delivery failure(s) for alpha")
	assert.Contains(t, string(gotMsg), "To: ops@example.com, oncall@example.com")
}

func TestSMTPAdapterVerify(t *testing.T) {
	a := NewSMTPAdapter()

	err := a.Verify(&config.AlertChannel{ID: "ch-1"})
	assert.ErrorContains(t, err, "smtp_host is required")

	err = a.Verify(&config.AlertChannel{ID: "ch-1", SMTPHost: "mail.example.com"})
	assert.ErrorContains(t, err, "from is required")

	err = a.Verify(&config.AlertChannel{ID: "ch-1", SMTPHost: "mail.example.com", From: "a@b.c"})
	assert.ErrorContains(t, err, "at least one recipient")

	err = a.Verify(&config.AlertChannel{ID: "ch-1", SMTPHost: "mail.example.com", From: "a@b.c", Recipients: []string{"x@y.z"}})
	assert.NoError(t, err)
}

func TestSlackAdapterVerify(t *testing.T) {
	a := NewSlackAdapter()

	err := a.Verify(&config.AlertChannel{ID: "ch-2"})
	assert.ErrorContains(t, err, "slack_token is required")

	err = a.Verify(&config.AlertChannel{ID: "ch-2", SlackToken: "xoxb-test"})
	assert.ErrorContains(t, err, "slack_channel is required")

	err = a.Verify(&config.AlertChannel{ID: "ch-2", SlackToken: "xoxb-test", SlackChannel: "#alerts"})
	assert.NoError(t, err)
}

func TestNewServiceNilWithoutChannels(t *testing.T) {
	assert.Nil(t, NewService(nil, &config.AlertConfig{}, config.NewAlertChannelRegistry(nil)))
	assert.Nil(t, NewService(nil, &config.AlertConfig{}, nil))

	var s *Service
	assert.NotPanics(t, func() {
		s.Start(context.Background())
		s.Stop()
		s.NotifyAutoDisabled(context.Background(), "org", "int", "name", 5)
	})
}
