package database

import (
	"context"
	"fmt"
)

// tenantTables are the tables that carried the legacy tenant_id column.
var tenantTables = []string{
	"event_audits",
	"execution_logs",
	"dlq_entries",
	"scheduled_entries",
	"source_checkpoints",
	"alert_logs",
}

// MigrateOrgIDs copies the legacy tenant_id column into org_id wherever the
// column still exists and org_id is empty. Idempotent; safe to re-run.
// Returns rows updated, or drift count when dryRun.
func (c *Client) MigrateOrgIDs(ctx context.Context, dryRun bool) (int64, error) {
	var total int64
	for _, table := range tenantTables {
		var hasLegacy bool
		row := c.db.QueryRowContext(ctx,
			`SELECT EXISTS (
				SELECT 1 FROM information_schema.columns
				WHERE table_name = $1 AND column_name = 'tenant_id'
			)`, table)
		if err := row.Scan(&hasLegacy); err != nil {
			return total, fmt.Errorf("checking %s for tenant_id: %w", table, err)
		}
		if !hasLegacy {
			continue
		}

		if dryRun {
			var pending int64
			row := c.db.QueryRowContext(ctx, fmt.Sprintf(
				`SELECT COUNT(*) FROM %s WHERE (org_id IS NULL OR org_id = '') AND tenant_id IS NOT NULL`, table))
			if err := row.Scan(&pending); err != nil {
				return total, fmt.Errorf("counting pending rows in %s: %w", table, err)
			}
			total += pending
			continue
		}

		res, err := c.db.ExecContext(ctx, fmt.Sprintf(
			`UPDATE %s SET org_id = tenant_id WHERE (org_id IS NULL OR org_id = '') AND tenant_id IS NOT NULL`, table))
		if err != nil {
			return total, fmt.Errorf("migrating %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
