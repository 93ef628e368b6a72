package config

import "sync"

// AlertChannel configures one digest delivery channel for an org.
// Key format is "CHANNEL:PROVIDER", e.g. EMAIL:SMTP or SLACK:API.
type AlertChannel struct {
	ID         string   `yaml:"id" validate:"required"`
	OrgID      string   `yaml:"org_id" validate:"required"`
	Channel    string   `yaml:"channel" validate:"required"` // EMAIL, SLACK
	Provider   string   `yaml:"provider" validate:"required"`
	Recipients []string `yaml:"recipients"`

	// SMTP
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port"`
	SMTPUser string `yaml:"smtp_user"`
	SMTPPass string `yaml:"smtp_pass"`
	From     string `yaml:"from"`

	// Slack
	SlackToken   string `yaml:"slack_token"`
	SlackChannel string `yaml:"slack_channel"`
}

// Key returns the adapter registry key.
func (c *AlertChannel) Key() string {
	return c.Channel + ":" + c.Provider
}

// AlertChannelRegistry holds loaded alert channels keyed by org.
type AlertChannelRegistry struct {
	mu       sync.RWMutex
	channels map[string][]*AlertChannel // orgID → channels
	count    int
}

// NewAlertChannelRegistry creates a registry from loaded definitions.
func NewAlertChannelRegistry(defs []*AlertChannel) *AlertChannelRegistry {
	m := make(map[string][]*AlertChannel)
	for _, d := range defs {
		m[d.OrgID] = append(m[d.OrgID], d)
	}
	return &AlertChannelRegistry{channels: m, count: len(defs)}
}

// ForOrg returns the channels configured for an org.
func (r *AlertChannelRegistry) ForOrg(orgID string) []*AlertChannel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.channels[orgID]
}

// Len returns the number of registered channels.
func (r *AlertChannelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}
