// Package transform produces outbound request bodies from events, via SIMPLE
// field mappings or sandboxed scripts, and applies {{...}} template
// substitution to URLs, headers, and body strings.
package transform

import "time"

// Context carries the per-execution values exposed to scripts and templates.
type Context struct {
	OrgID           string `json:"orgId"`
	OrgUnitID       string `json:"orgUnitId,omitempty"`
	EventType       string `json:"eventType"`
	IntegrationID   string `json:"integrationId"`
	IntegrationName string `json:"integrationName"`

	// Now is injected rather than read from the clock so scheduling scripts
	// are deterministic under test.
	Now time.Time `json:"-"`
}

// ScriptContext is the plain map handed to sandboxed scripts.
func (c Context) ScriptContext() map[string]interface{} {
	m := map[string]interface{}{
		"orgId":           c.OrgID,
		"eventType":       c.EventType,
		"integrationId":   c.IntegrationID,
		"integrationName": c.IntegrationName,
		"now":             c.Now.UnixMilli(),
	}
	if c.OrgUnitID != "" {
		m["orgUnitId"] = c.OrgUnitID
	}
	return m
}
