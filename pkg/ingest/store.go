// Package ingest records incoming events, enforces exactly-once admission,
// and drives the event lifecycle through to a terminal status.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/eventaudit"
	"github.com/relayforge/relayforge/ent/processedevent"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/models"
)

// dedupCacheSize bounds the in-process fast-path cache. A miss is never an
// error: the database unique indexes are the actual guarantee.
const dedupCacheSize = 10000

// Store persists event audit rows and enforces dedup.
type Store struct {
	client    *ent.Client
	retention *config.RetentionConfig
	seen      *lru.Cache[string, struct{}]
}

// NewStore creates an event store.
func NewStore(client *ent.Client, retention *config.RetentionConfig) (*Store, error) {
	seen, err := lru.New[string, struct{}](dedupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating dedup cache: %w", err)
	}
	return &Store{client: client, retention: retention, seen: seen}, nil
}

// TryInsert admits an event exactly once. Returns the created audit row, or
// ok=false when the event is a duplicate. The event's ID field is set to the
// audit row ID on success.
func (s *Store) TryInsert(ctx context.Context, event *models.Event) (ok bool, err error) {
	cacheKey := s.cacheKey(event)
	if _, dup := s.seen.Get(cacheKey); dup {
		return false, nil
	}

	eventID := uuid.New().String()
	create := s.client.EventAudit.Create().
		SetID(eventID).
		SetSource(event.Source).
		SetOrgID(event.OrgID).
		SetEventType(event.EventType).
		SetPayload(event.Payload).
		SetPayloadHash(event.PayloadHash()).
		SetStatus(eventaudit.StatusReceived).
		SetReceivedAt(event.ReceivedAt).
		SetExpiresAt(event.ReceivedAt.Add(s.retention.EventRetention))

	if event.SourceID != "" {
		create = create.SetSourceID(event.SourceID)
	} else {
		// No upstream row ID; dedup falls back to the derived event key
		// bucketed by minute.
		create = create.
			SetEventKey(event.EventKey()).
			SetReceivedAtBucket(event.Bucket())
	}
	if event.OrgUnitID != "" {
		create = create.SetOrgUnitID(event.OrgUnitID)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			s.seen.Add(cacheKey, struct{}{})
			slog.Debug("Duplicate event rejected",
				"source", event.Source,
				"source_id", event.SourceID,
				"org_id", event.OrgID)
			return false, nil
		}
		return false, fmt.Errorf("failed to insert event audit: %w", err)
	}

	if event.SourceID == "" {
		s.recordProcessed(ctx, event, eventID)
	}

	s.seen.Add(cacheKey, struct{}{})
	event.ID = eventID
	return true, nil
}

// recordProcessed mirrors fallback-key admissions into the short-lived dedup
// table so other pods reject duplicates without touching the audit indexes.
// Best-effort: the audit unique index already won the race.
func (s *Store) recordProcessed(ctx context.Context, event *models.Event, eventID string) {
	err := s.client.ProcessedEvent.Create().
		SetID(uuid.New().String()).
		SetOrgID(event.OrgID).
		SetEventKey(event.EventKey()).
		SetBucket(event.Bucket()).
		SetEventID(eventID).
		SetExpiresAt(time.Now().Add(s.retention.DedupRetention)).
		OnConflictColumns(
			processedevent.FieldOrgID,
			processedevent.FieldEventKey,
			processedevent.FieldBucket,
		).
		Ignore().
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to record processed-event marker", "error", err)
	}
}

func (s *Store) cacheKey(event *models.Event) string {
	if event.SourceID != "" {
		return event.Source + "|" + event.SourceID
	}
	return event.OrgID + "|" + event.EventKey() + "|" + event.Bucket().Format(time.RFC3339)
}

// MarkProcessing transitions a received event to processing and stamps the
// timeline.
func (s *Store) MarkProcessing(ctx context.Context, eventID string) error {
	return s.transition(ctx, eventID, eventaudit.StatusProcessing, "matching integrations", nil)
}

// MarkDelivered records a fully successful fan-out.
func (s *Store) MarkDelivered(ctx context.Context, eventID string, integrations int) error {
	return s.transition(ctx, eventID, eventaudit.StatusDelivered, "all deliveries succeeded",
		map[string]interface{}{"integrations": integrations})
}

// MarkSkipped records an event that matched nothing or was gated off.
func (s *Store) MarkSkipped(ctx context.Context, eventID, reason string) error {
	return s.transition(ctx, eventID, eventaudit.StatusSkipped, reason, nil)
}

// MarkFailed records an event with at least one failed delivery.
func (s *Store) MarkFailed(ctx context.Context, eventID string, failed, total int) error {
	return s.transition(ctx, eventID, eventaudit.StatusFailed, "one or more deliveries failed",
		map[string]interface{}{"failed": failed, "total": total})
}

func (s *Store) transition(ctx context.Context, eventID string, status eventaudit.Status, stage string, details map[string]interface{}) error {
	audit, err := s.client.EventAudit.Get(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to load event audit %s: %w", eventID, err)
	}

	entry := map[string]interface{}{
		"ts":     time.Now().UTC().Format(time.RFC3339Nano),
		"stage":  stage,
		"status": string(status),
	}
	if len(details) > 0 {
		entry["details"] = details
	}

	err = audit.Update().
		SetStatus(status).
		SetTimeline(append(audit.Timeline, entry)).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition event %s to %s: %w", eventID, status, err)
	}
	return nil
}

// Get returns an audit row by ID.
func (s *Store) Get(ctx context.Context, eventID string) (*ent.EventAudit, error) {
	audit, err := s.client.EventAudit.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("event %s not found", eventID)
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return audit, nil
}

// ListForOrg returns recent events for an org, newest first.
func (s *Store) ListForOrg(ctx context.Context, orgID string, limit int) ([]*ent.EventAudit, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	events, err := s.client.EventAudit.Query().
		Where(eventaudit.OrgIDEQ(orgID)).
		Order(ent.Desc(eventaudit.FieldReceivedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
