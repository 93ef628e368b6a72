package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/dlqentry"
	"github.com/relayforge/relayforge/pkg/delivery"
	"github.com/relayforge/relayforge/pkg/masking"
)

// Store persists dead letter queue entries. It implements
// delivery.RetryScheduler.
type Store struct {
	client  *ent.Client
	backoff *Backoff
	masker  *masking.Service
}

// NewStore creates a DLQ store.
func NewStore(client *ent.Client, backoff *Backoff, masker *masking.Service) *Store {
	return &Store{client: client, backoff: backoff, masker: masker}
}

// Schedule parks a failed delivery. Retryable failures with budget left are
// queued with a backoff deadline; everything else is recorded as abandoned so
// operators can still inspect and manually replay it.
func (s *Store) Schedule(ctx context.Context, f delivery.Failed) error {
	status := dlqentry.StatusQueued
	var nextAttempt *time.Time

	if f.Kind.Retryable() && f.Attempt < f.MaxAttempts+1 {
		at := time.Now().Add(s.backoff.Delay(f.Attempt, f.RetryAfter))
		nextAttempt = &at
	} else {
		status = dlqentry.StatusAbandoned
	}

	create := s.client.DLQEntry.Create().
		SetID(uuid.New().String()).
		SetTraceID(f.TraceID).
		SetMessageID(f.MessageID).
		SetIntegrationID(f.IntegrationID).
		SetOrgID(f.OrgID).
		SetDirection(dlqentry.Direction(f.Direction)).
		SetPayload(f.Payload).
		SetErrorMessage(s.masker.RedactString(f.ErrorMessage)).
		SetErrorCode(string(f.Kind)).
		SetMaxRetries(f.MaxAttempts).
		SetAttempts(f.Attempt).
		SetStatus(status)

	if f.ActionIndex != nil {
		create = create.SetActionIndex(*f.ActionIndex)
	}
	if f.StatusCode > 0 {
		create = create.SetStatusCode(f.StatusCode)
	}
	if nextAttempt != nil {
		create = create.SetNextAttemptAt(*nextAttempt)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create DLQ entry: %w", err)
	}

	slog.Info("Delivery parked in DLQ",
		"trace_id", f.TraceID,
		"integration_id", f.IntegrationID,
		"error_code", f.Kind,
		"status", status,
		"attempt", f.Attempt,
		"max_retries", f.MaxAttempts)
	return nil
}

// Get returns a DLQ entry by ID.
func (s *Store) Get(ctx context.Context, id string) (*ent.DLQEntry, error) {
	entry, err := s.client.DLQEntry.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("DLQ entry %s not found", id)
		}
		return nil, fmt.Errorf("failed to load DLQ entry: %w", err)
	}
	return entry, nil
}

// ListForOrg returns recent DLQ entries for an org, newest first.
func (s *Store) ListForOrg(ctx context.Context, orgID string, limit int) ([]*ent.DLQEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := s.client.DLQEntry.Query().
		Where(dlqentry.OrgIDEQ(orgID)).
		Order(ent.Desc(dlqentry.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list DLQ entries: %w", err)
	}
	return entries, nil
}
