package database

import (
	"context"
	"fmt"
)

// legacyIndexes are pre-rename index names dropped by RebuildIndexes.
var legacyIndexes = []string{
	"idx_execution_logs_tenant",
	"idx_dlq_tenant_status",
	"idx_event_audits_tenant",
	"idx_scheduled_entries_tenant",
}

// canonicalIndexes are created idempotently by RebuildIndexes. The ent
// migrations create these too; this path exists for the rebuild-indexes
// operational command after manual surgery or legacy upgrades.
var canonicalIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_execution_logs_org_status_started ON execution_logs (org_id, status, started_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_dlq_entries_org_status_created ON dlq_entries (org_id, status, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_dlq_entries_status_next_attempt ON dlq_entries (status, next_attempt_at)`,
	`CREATE INDEX IF NOT EXISTS idx_event_audits_org_status_received ON event_audits (org_id, status, received_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_event_audits_expires ON event_audits (expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_entries_status_for ON scheduled_entries (status, scheduled_for)`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_attempts_attempted ON delivery_attempts (attempted_at)`,
	`CREATE INDEX IF NOT EXISTS idx_processed_events_expires ON processed_events (expires_at)`,
}

// RebuildIndexes drops legacy index names and creates the canonical set.
// Returns the number of statements that changed anything when dryRun is
// false; with dryRun it only reports drift without touching the database.
func (c *Client) RebuildIndexes(ctx context.Context, dryRun bool) (drift int, err error) {
	for _, name := range legacyIndexes {
		var exists bool
		row := c.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = $1)`, name)
		if err := row.Scan(&exists); err != nil {
			return drift, fmt.Errorf("checking legacy index %s: %w", name, err)
		}
		if !exists {
			continue
		}
		drift++
		if dryRun {
			continue
		}
		if _, err := c.db.ExecContext(ctx, fmt.Sprintf(`DROP INDEX IF EXISTS %s`, name)); err != nil {
			return drift, fmt.Errorf("dropping legacy index %s: %w", name, err)
		}
	}

	for _, stmt := range canonicalIndexes {
		if dryRun {
			continue
		}
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return drift, fmt.Errorf("creating canonical index: %w", err)
		}
	}

	return drift, nil
}
