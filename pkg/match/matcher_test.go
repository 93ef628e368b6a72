package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/models"
)

func newIntegration(id string, mutate func(*config.Integration)) *config.Integration {
	in := &config.Integration{
		ID:        id,
		OrgID:     "org-1",
		OrgUnitID: "unit-1",
		Name:      id,
		Direction: config.DirectionOutbound,
		EventType: "invoice.created",
		Scope:     config.ScopeEntityOnly,
		IsActive:  true,
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if mutate != nil {
		mutate(in)
	}
	return in
}

func newEvent() *models.Event {
	return &models.Event{
		ID:        "evt-1",
		OrgID:     "org-1",
		OrgUnitID: "unit-1",
		EventType: "invoice.created",
	}
}

func TestMatch_EntityOnlyScope(t *testing.T) {
	tests := []struct {
		name      string
		orgUnitID string
		want      int
	}{
		{name: "same org unit matches", orgUnitID: "unit-1", want: 1},
		{name: "sibling org unit does not match", orgUnitID: "unit-2", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(config.NewIntegrationRegistry([]*config.Integration{
				newIntegration("int-1", func(i *config.Integration) {
					i.OrgUnitID = tt.orgUnitID
				}),
			}))
			assert.Len(t, m.Match(newEvent()), tt.want)
		})
	}
}

func TestMatch_IncludeChildrenScope(t *testing.T) {
	tests := []struct {
		name     string
		excluded []string
		orgID    string
		want     int
	}{
		{name: "child unit matches", want: 1},
		{name: "excluded unit does not match", excluded: []string{"unit-1"}, want: 0},
		{name: "other org does not match", orgID: "org-2", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newIntegration("int-1", func(i *config.Integration) {
				i.Scope = config.ScopeIncludeChildren
				i.OrgUnitID = ""
				i.ExcludedOrgUnits = tt.excluded
				if tt.orgID != "" {
					i.OrgID = tt.orgID
				}
			})
			m := New(config.NewIntegrationRegistry([]*config.Integration{in}))
			assert.Len(t, m.Match(newEvent()), tt.want)
		})
	}
}

func TestMatch_SkipsInactiveAndNonOutbound(t *testing.T) {
	m := New(config.NewIntegrationRegistry([]*config.Integration{
		newIntegration("inactive", func(i *config.Integration) { i.IsActive = false }),
		newIntegration("inbound", func(i *config.Integration) { i.Direction = config.DirectionInbound }),
	}))
	assert.Empty(t, m.Match(newEvent()))
}

func TestMatch_ExactBeforeWildcard(t *testing.T) {
	wild := newIntegration("wild", func(i *config.Integration) {
		i.EventType = "*"
		// Newer than the exact match; exact must still come first.
		i.UpdatedAt = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	})
	exact := newIntegration("exact", nil)

	m := New(config.NewIntegrationRegistry([]*config.Integration{wild, exact}))
	matched := m.Match(newEvent())

	if assert.Len(t, matched, 2) {
		assert.Equal(t, "exact", matched[0].ID)
		assert.Equal(t, "wild", matched[1].ID)
	}
}

func TestMatch_UnrelatedEventType(t *testing.T) {
	m := New(config.NewIntegrationRegistry([]*config.Integration{
		newIntegration("int-1", func(i *config.Integration) { i.EventType = "payment.settled" }),
	}))
	assert.Empty(t, m.Match(newEvent()))
}
