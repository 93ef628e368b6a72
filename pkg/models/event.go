// Package models holds the normalized domain types shared across the
// ingestion, matching, and delivery layers.
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Event is a normalized business event pulled from a source.
type Event struct {
	ID         string                 `json:"eventId"`
	Source     string                 `json:"source"`
	SourceID   string                 `json:"sourceId,omitempty"`
	OrgID      string                 `json:"orgId"`
	OrgUnitID  string                 `json:"orgUnitId,omitempty"`
	EventType  string                 `json:"eventType"`
	Payload    map[string]interface{} `json:"payload"`
	ReceivedAt time.Time              `json:"receivedAt"`

	// Cursor is the source checkpoint value this event advances to.
	// Transport-only; never serialized.
	Cursor int64 `json:"-"`
}

// PayloadHash returns the SHA-256 of the canonical (key-sorted) payload
// encoding, used for audit records and duplicate diagnosis.
func (e *Event) PayloadHash() string {
	return hashCanonical(e.Payload)
}

// EventKey is the fallback dedup key used when the source provides no row ID:
// hash(eventType + id-like payload field + orgId).
func (e *Event) EventKey() string {
	idLike := ""
	for _, k := range []string{"id", "uuid", "rid", "reference", "referenceId"} {
		if v, ok := e.Payload[k]; ok {
			idLike = fmt.Sprint(v)
			break
		}
	}
	sum := sha256.Sum256([]byte(e.EventType + "|" + idLike + "|" + e.OrgID))
	return hex.EncodeToString(sum[:])
}

// Bucket returns the minute-truncated receipt time for fallback dedup.
func (e *Event) Bucket() time.Time {
	return e.ReceivedAt.UTC().Truncate(time.Minute)
}

func hashCanonical(m map[string]interface{}) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		b, _ := json.Marshal(m[k])
		h.Write([]byte(k))
		h.Write([]byte{'='})
		h.Write(b)
		h.Write([]byte{';'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
