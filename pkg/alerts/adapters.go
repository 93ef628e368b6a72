package alerts

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/relayforge/relayforge/pkg/config"
)

// Adapter delivers a digest through one channel.
type Adapter interface {
	// Key returns the "CHANNEL:PROVIDER" identifier this adapter serves.
	Key() string
	// Verify checks the channel configuration without sending.
	Verify(ch *config.AlertChannel) error
	// Send delivers the digest. Returns a short provider response for the
	// alert log.
	Send(ctx context.Context, ch *config.AlertChannel, d *Digest) (string, error)
}

// SlackAdapter posts digests via the Slack Web API.
type SlackAdapter struct {
	// apiURL overrides the Slack endpoint in tests.
	apiURL string
}

// NewSlackAdapter creates the SLACK:API adapter.
func NewSlackAdapter() *SlackAdapter {
	return &SlackAdapter{}
}

// Key returns "SLACK:API".
func (a *SlackAdapter) Key() string { return "SLACK:API" }

// Verify checks the token and channel are present.
func (a *SlackAdapter) Verify(ch *config.AlertChannel) error {
	if ch.SlackToken == "" {
		return fmt.Errorf("alert channel %s: slack_token is required", ch.ID)
	}
	if ch.SlackChannel == "" {
		return fmt.Errorf("alert channel %s: slack_channel is required", ch.ID)
	}
	return nil
}

// Send posts the digest as Block Kit sections.
func (a *SlackAdapter) Send(ctx context.Context, ch *config.AlertChannel, d *Digest) (string, error) {
	opts := []goslack.Option{}
	if a.apiURL != "" {
		opts = append(opts, goslack.OptionAPIURL(a.apiURL))
	}
	api := goslack.New(ch.SlackToken, opts...)

	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, ts, err := api.PostMessageContext(sendCtx, ch.SlackChannel,
		goslack.MsgOptionBlocks(buildDigestBlocks(d)...),
		goslack.MsgOptionText(d.Subject(), false),
	)
	if err != nil {
		return "", fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return "ts=" + ts, nil
}

const maxBlockTextLength = 2900

func buildDigestBlocks(d *Digest) []goslack.Block {
	header := fmt.Sprintf(":rotating_light: *%s*", d.Subject())
	body := d.Body()
	if len(body) > maxBlockTextLength {
		body = body[:maxBlockTextLength] + "…"
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, "```"+body+"```", false, false),
			nil, nil,
		),
	}
}

// SMTPAdapter sends digests as plain-text email.
type SMTPAdapter struct {
	// send is swappable for tests.
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPAdapter creates the EMAIL:SMTP adapter.
func NewSMTPAdapter() *SMTPAdapter {
	return &SMTPAdapter{send: smtp.SendMail}
}

// Key returns "EMAIL:SMTP".
func (a *SMTPAdapter) Key() string { return "EMAIL:SMTP" }

// Verify checks host, sender, and recipients are present.
func (a *SMTPAdapter) Verify(ch *config.AlertChannel) error {
	if ch.SMTPHost == "" {
		return fmt.Errorf("alert channel %s: smtp_host is required", ch.ID)
	}
	if ch.From == "" {
		return fmt.Errorf("alert channel %s: from is required", ch.ID)
	}
	if len(ch.Recipients) == 0 {
		return fmt.Errorf("alert channel %s: at least one recipient is required", ch.ID)
	}
	return nil
}

// Send delivers the digest to every configured recipient.
func (a *SMTPAdapter) Send(_ context.Context, ch *config.AlertChannel, d *Digest) (string, error) {
	port := ch.SMTPPort
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", ch.SMTPHost, port)

	var auth smtp.Auth
	if ch.SMTPUser != "" {
		auth = smtp.PlainAuth("", ch.SMTPUser, ch.SMTPPass, ch.SMTPHost)
	}

	msg := buildEmail(ch.From, ch.Recipients, d.Subject(), d.Body())
	if err := a.send(addr, auth, ch.From, ch.Recipients, msg); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}
	return fmt.Sprintf("delivered to %d recipient(s)", len(ch.Recipients)), nil
}

func buildEmail(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
