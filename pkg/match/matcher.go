// Package match selects the integrations that should receive an event.
package match

import (
	"log/slog"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/models"
)

// Matcher filters registered integrations against incoming events.
// It is stateless; all configuration comes from the registry.
type Matcher struct {
	registry *config.IntegrationRegistry
}

// New creates a matcher over the given registry.
func New(registry *config.IntegrationRegistry) *Matcher {
	return &Matcher{registry: registry}
}

// Match returns the integrations that should receive the event, ordered by
// UpdatedAt descending (registry order). Exact event-type matches sort before
// wildcard subscriptions.
func (m *Matcher) Match(event *models.Event) []*config.Integration {
	var exact, wildcard []*config.Integration

	for _, in := range m.registry.All() {
		if !in.IsActive || in.Direction != config.DirectionOutbound {
			continue
		}
		if !scopeMatches(in, event) {
			continue
		}
		switch in.EventType {
		case event.EventType:
			exact = append(exact, in)
		case "*":
			wildcard = append(wildcard, in)
		}
	}

	matched := append(exact, wildcard...)
	if len(matched) == 0 {
		slog.Debug("No integrations matched event",
			"event_id", event.ID,
			"event_type", event.EventType,
			"org_id", event.OrgID)
	}
	return matched
}

// scopeMatches applies the tenant scoping rules:
//   - ENTITY_ONLY: the integration's org unit must equal the event's.
//   - INCLUDE_CHILDREN: same org, and the event's org unit must not be on the
//     integration's exclusion list.
func scopeMatches(in *config.Integration, event *models.Event) bool {
	switch in.Scope {
	case config.ScopeEntityOnly:
		return in.OrgID == event.OrgID && in.OrgUnitID == event.OrgUnitID
	case config.ScopeIncludeChildren:
		if in.OrgID != event.OrgID {
			return false
		}
		for _, excluded := range in.ExcludedOrgUnits {
			if excluded == event.OrgUnitID {
				return false
			}
		}
		return true
	default:
		return false
	}
}
