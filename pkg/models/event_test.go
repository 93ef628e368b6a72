package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPayloadHashCanonical(t *testing.T) {
	a := &Event{Payload: map[string]interface{}{"b": 2, "a": 1}}
	b := &Event{Payload: map[string]interface{}{"a": 1, "b": 2}}

	// Key order must not matter.
	assert.Equal(t, a.PayloadHash(), b.PayloadHash())

	c := &Event{Payload: map[string]interface{}{"a": 1, "b": 3}}
	assert.NotEqual(t, a.PayloadHash(), c.PayloadHash())

	empty := &Event{Payload: map[string]interface{}{}}
	assert.Len(t, empty.PayloadHash(), 64)
}

func TestEventKey(t *testing.T) {
	base := &Event{
		OrgID:     "org-1",
		EventType: "order.created",
		Payload:   map[string]interface{}{"id": "o-1", "amount": 5},
	}

	// Stable for identical identity fields, regardless of other payload keys.
	same := &Event{
		OrgID:     "org-1",
		EventType: "order.created",
		Payload:   map[string]interface{}{"id": "o-1", "amount": 99},
	}
	assert.Equal(t, base.EventKey(), same.EventKey())

	otherRow := &Event{
		OrgID:     "org-1",
		EventType: "order.created",
		Payload:   map[string]interface{}{"id": "o-2"},
	}
	assert.NotEqual(t, base.EventKey(), otherRow.EventKey())

	otherOrg := &Event{
		OrgID:     "org-2",
		EventType: "order.created",
		Payload:   map[string]interface{}{"id": "o-1"},
	}
	assert.NotEqual(t, base.EventKey(), otherOrg.EventKey())

	otherType := &Event{
		OrgID:     "org-1",
		EventType: "order.updated",
		Payload:   map[string]interface{}{"id": "o-1"},
	}
	assert.NotEqual(t, base.EventKey(), otherType.EventKey())
}

func TestEventKeyIDFieldPrecedence(t *testing.T) {
	withID := &Event{
		OrgID:     "org-1",
		EventType: "t",
		Payload:   map[string]interface{}{"id": "x", "uuid": "y"},
	}
	withUUIDOnly := &Event{
		OrgID:     "org-1",
		EventType: "t",
		Payload:   map[string]interface{}{"uuid": "y"},
	}

	// "id" wins over "uuid" when both are present.
	assert.NotEqual(t, withID.EventKey(), withUUIDOnly.EventKey())

	idX := &Event{
		OrgID:     "org-1",
		EventType: "t",
		Payload:   map[string]interface{}{"id": "x"},
	}
	assert.Equal(t, withID.EventKey(), idX.EventKey())

	// No id-like field at all still yields a stable key.
	bare := &Event{OrgID: "org-1", EventType: "t", Payload: map[string]interface{}{"n": 1}}
	assert.Equal(t, bare.EventKey(), bare.EventKey())
}

func TestBucketTruncatesToMinute(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	e := &Event{ReceivedAt: time.Date(2026, 3, 15, 12, 34, 56, 789, loc)}

	got := e.Bucket()
	assert.Equal(t, time.Date(2026, 3, 15, 10, 34, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
