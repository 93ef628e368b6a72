package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/scheduledentry"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/models"
	"github.com/relayforge/relayforge/pkg/transform"
)

// ErrNotCancellable rejects cancellation of entries that already left the
// pending state.
var ErrNotCancellable = errors.New("scheduled entry is not in a cancellable state")

// Service plans scheduled dispatches and manages entry lifecycle.
type Service struct {
	client    *ent.Client
	evaluator *Evaluator
}

// NewService creates a scheduler service.
func NewService(client *ent.Client, evaluator *Evaluator) *Service {
	return &Service{client: client, evaluator: evaluator}
}

// PlanForEvent evaluates the integration's scheduling script and persists the
// resulting entry. Called for matched DELAYED and RECURRING integrations
// instead of immediate delivery.
func (s *Service) PlanForEvent(ctx context.Context, event *models.Event, in *config.Integration) (*ent.ScheduledEntry, error) {
	tctx := transform.Context{
		OrgID:           event.OrgID,
		OrgUnitID:       event.OrgUnitID,
		EventType:       event.EventType,
		IntegrationID:   in.ID,
		IntegrationName: in.Name,
		Now:             time.Now(),
	}

	var plan *Plan
	var err error
	switch in.DeliveryMode {
	case config.DeliveryDelayed:
		plan, err = s.evaluator.EvaluateDelayed(ctx, in.SchedulingScript, event.Payload, tctx)
	case config.DeliveryRecurring:
		plan, err = s.evaluator.EvaluateRecurring(ctx, in.SchedulingScript, event.Payload, tctx)
	default:
		return nil, fmt.Errorf("integration %s has delivery mode %s, nothing to schedule", in.ID, in.DeliveryMode)
	}
	if err != nil {
		return nil, fmt.Errorf("scheduling script for integration %s: %w", in.ID, err)
	}

	entry, err := s.create(ctx, event, in, plan.At, plan.Recurring, 1)
	if err != nil {
		return nil, err
	}

	slog.Info("Scheduled entry created",
		"schedule_id", entry.ID,
		"integration_id", in.ID,
		"scheduled_for", plan.At,
		"recurring", plan.Recurring != nil)
	return entry, nil
}

// SpawnNext creates the follow-up entry after a recurring dispatch.
// Returns nil, nil when the series is complete.
func (s *Service) SpawnNext(ctx context.Context, entry *ent.ScheduledEntry) (*ent.ScheduledEntry, error) {
	rec, first, occurrence, ok := decodeRecurring(entry.Recurring)
	if !ok {
		return nil, nil
	}

	next, more := NextOccurrence(first, rec, occurrence)
	if !more {
		return nil, nil
	}

	event := &models.Event{
		ID:        entry.OriginalEventID,
		OrgID:     entry.OrgID,
		EventType: entry.EventType,
		Payload:   entry.Payload,
	}
	in := &config.Integration{ID: entry.IntegrationID, TargetURL: entry.TargetURL, HTTPMethod: entry.HTTPMethod}

	return s.create(ctx, event, in, next, rec, occurrence+1)
}

func (s *Service) create(ctx context.Context, event *models.Event, in *config.Integration, at time.Time, rec *Recurrence, occurrence int) (*ent.ScheduledEntry, error) {
	create := s.client.ScheduledEntry.Create().
		SetID(uuid.New().String()).
		SetIntegrationID(in.ID).
		SetOrgID(event.OrgID).
		SetOriginalEventID(event.ID).
		SetEventType(event.EventType).
		SetScheduledFor(at).
		SetStatus(scheduledentry.StatusPending).
		SetPayload(event.Payload).
		SetTargetURL(in.TargetURL).
		SetHTTPMethod(defaultMethod(in.HTTPMethod))

	if rec != nil {
		recurring := map[string]interface{}{
			"first_occurrence": rec.firstOr(at, occurrence).Format(time.RFC3339Nano),
			"interval_ms":      rec.Interval.Milliseconds(),
			"occurrence":       occurrence,
		}
		if rec.MaxOccurrences > 0 {
			recurring["max_occurrences"] = rec.MaxOccurrences
		}
		if !rec.EndDate.IsZero() {
			recurring["end_date"] = rec.EndDate.Format(time.RFC3339Nano)
		}
		create = create.SetRecurring(recurring)
	}

	entry, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduled entry: %w", err)
	}
	return entry, nil
}

// Cancel marks a pending entry cancelled. Entries already picked up,
// dispatched, or cancelled are rejected.
func (s *Service) Cancel(ctx context.Context, scheduleID, cancelledBy, reason string) error {
	n, err := s.client.ScheduledEntry.Update().
		Where(
			scheduledentry.IDEQ(scheduleID),
			scheduledentry.StatusEQ(scheduledentry.StatusPending),
		).
		SetStatus(scheduledentry.StatusCancelled).
		SetCancellation(map[string]interface{}{
			"cancelled_by": cancelledBy,
			"cancelled_at": time.Now().UTC().Format(time.RFC3339),
			"reason":       reason,
		}).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel scheduled entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scheduled entry %s: %w", scheduleID, ErrNotCancellable)
	}

	slog.Info("Scheduled entry cancelled", "schedule_id", scheduleID, "by", cancelledBy)
	return nil
}

// ListForOrg returns upcoming entries for an org, soonest first.
func (s *Service) ListForOrg(ctx context.Context, orgID string, limit int) ([]*ent.ScheduledEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := s.client.ScheduledEntry.Query().
		Where(
			scheduledentry.OrgIDEQ(orgID),
			scheduledentry.StatusEQ(scheduledentry.StatusPending),
		).
		Order(ent.Asc(scheduledentry.FieldScheduledFor)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled entries: %w", err)
	}
	return entries, nil
}

// firstOr returns the series anchor: for occurrence 1 the anchor is the entry
// time itself, later occurrences carry the original anchor forward.
func (r *Recurrence) firstOr(at time.Time, occurrence int) time.Time {
	if occurrence == 1 || r.first.IsZero() {
		return at
	}
	return r.first
}

// decodeRecurring unpacks the persisted recurrence metadata.
func decodeRecurring(raw map[string]interface{}) (*Recurrence, time.Time, int, bool) {
	if len(raw) == 0 {
		return nil, time.Time{}, 0, false
	}

	firstStr, _ := raw["first_occurrence"].(string)
	first, err := time.Parse(time.RFC3339Nano, firstStr)
	if err != nil {
		return nil, time.Time{}, 0, false
	}

	intervalMs, ok := toFloat(raw["interval_ms"])
	if !ok {
		return nil, time.Time{}, 0, false
	}

	occurrence := 1
	if occ, ok := toFloat(raw["occurrence"]); ok {
		occurrence = int(occ)
	}

	rec := &Recurrence{Interval: time.Duration(intervalMs) * time.Millisecond, first: first}
	if maxOcc, ok := toFloat(raw["max_occurrences"]); ok {
		rec.MaxOccurrences = int(maxOcc)
	}
	if endStr, ok := raw["end_date"].(string); ok {
		if end, err := time.Parse(time.RFC3339Nano, endStr); err == nil {
			rec.EndDate = end
		}
	}

	return rec, first, occurrence, true
}

func defaultMethod(m string) string {
	if m == "" {
		return "POST"
	}
	return m
}
