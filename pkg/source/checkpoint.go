// Package source polls external systems (MySQL, MongoDB, HTTP) for new
// business events and hands them to the ingestion pipeline.
package source

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/sourcecheckpoint"
)

// CheckpointStore tracks the per-stream high-water mark. Checkpoints only
// move forward; a crashed poller re-reads at most one batch.
type CheckpointStore struct {
	client *ent.Client
}

// NewCheckpointStore creates a checkpoint store.
func NewCheckpointStore(client *ent.Client) *CheckpointStore {
	return &CheckpointStore{client: client}
}

// Get returns the last processed ID for a stream, zero when the stream has
// never been polled.
func (s *CheckpointStore) Get(ctx context.Context, source, identifier, orgID string) (int64, error) {
	cp, err := s.client.SourceCheckpoint.Query().
		Where(
			sourcecheckpoint.SourceEQ(source),
			sourcecheckpoint.SourceIdentifierEQ(identifier),
			sourcecheckpoint.OrgIDEQ(orgID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	return cp.LastProcessedID, nil
}

// Advance moves the high-water mark forward. Each stream is owned by a
// single poller goroutine, so writes are monotonic by construction.
func (s *CheckpointStore) Advance(ctx context.Context, source, identifier, orgID string, id int64) error {
	err := s.client.SourceCheckpoint.Create().
		SetID(uuid.New().String()).
		SetSource(source).
		SetSourceIdentifier(identifier).
		SetOrgID(orgID).
		SetLastProcessedID(id).
		OnConflictColumns(
			sourcecheckpoint.FieldSource,
			sourcecheckpoint.FieldSourceIdentifier,
			sourcecheckpoint.FieldOrgID,
		).
		Update(func(u *ent.SourceCheckpointUpsert) {
			u.SetLastProcessedID(id)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance checkpoint: %w", err)
	}
	return nil
}
