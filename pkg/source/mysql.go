package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	// MySQL driver for external event sources.
	_ "github.com/go-sql-driver/mysql"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/models"
)

// PoolManager hands out MySQL connection pools. Sources marked shared_pool
// reuse one pool per DSN; others get a dedicated pool sized by pool_size.
type PoolManager struct {
	mu     sync.Mutex
	shared map[string]*sql.DB
}

// NewPoolManager creates an empty pool manager.
func NewPoolManager() *PoolManager {
	return &PoolManager{shared: make(map[string]*sql.DB)}
}

// Open returns the pool for a source, creating it on first use.
func (p *PoolManager) Open(src *config.Source) (*sql.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if src.SharedPool {
		if db, ok := p.shared[src.ConnectionString]; ok {
			return db, nil
		}
	}

	db, err := sql.Open("mysql", src.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("opening MySQL pool for source %s: %w", src.ID, err)
	}

	size := src.PoolSize
	if size <= 0 {
		size = 5
	}
	db.SetMaxOpenConns(size)
	db.SetMaxIdleConns(size / 2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if src.SharedPool {
		p.shared[src.ConnectionString] = db
	}
	return db, nil
}

// Close shuts down all shared pools.
func (p *PoolManager) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for dsn, db := range p.shared {
		if err := db.Close(); err != nil {
			slog.Warn("Failed to close shared MySQL pool", "error", err)
		}
		delete(p.shared, dsn)
	}
}

// MySQLReader reads new rows from a MySQL event table, keyed by a strictly
// increasing numeric ID column.
type MySQLReader struct {
	src *config.Source
	db  *sql.DB
}

// NewMySQLReader creates a reader over an opened pool.
func NewMySQLReader(src *config.Source, db *sql.DB) *MySQLReader {
	return &MySQLReader{src: src, db: db}
}

// Identifier returns the stream identifier for checkpoints.
func (r *MySQLReader) Identifier() string {
	return r.src.Table
}

// Fetch returns up to limit rows with ID above the checkpoint, in ID order.
func (r *MySQLReader) Fetch(ctx context.Context, after int64, limit int) ([]*models.Event, error) {
	cols := r.src.Columns
	query := fmt.Sprintf(
		"SELECT %s, %s, %s, %s FROM %s WHERE %s > ? ORDER BY %s ASC LIMIT ?",
		cols.ID, cols.OrgID, cols.EventType, cols.Payload,
		r.src.Table, cols.ID, cols.ID,
	)
	if cols.OrgUnitID != "" {
		query = fmt.Sprintf(
			"SELECT %s, %s, %s, %s, %s FROM %s WHERE %s > ? ORDER BY %s ASC LIMIT ?",
			cols.ID, cols.OrgID, cols.EventType, cols.Payload, cols.OrgUnitID,
			r.src.Table, cols.ID, cols.ID,
		)
	}

	rows, err := r.db.QueryContext(ctx, query, after, limit)
	if err != nil {
		return nil, fmt.Errorf("querying source %s: %w", r.src.ID, err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var (
			id         int64
			orgID      string
			eventType  string
			rawPayload []byte
			orgUnitID  sql.NullString
		)
		dest := []interface{}{&id, &orgID, &eventType, &rawPayload}
		if cols.OrgUnitID != "" {
			dest = append(dest, &orgUnitID)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning source %s row: %w", r.src.ID, err)
		}

		events = append(events, &models.Event{
			Source:     r.src.ID,
			SourceID:   strconv.FormatInt(id, 10),
			OrgID:      orgID,
			OrgUnitID:  orgUnitID.String,
			EventType:  eventType,
			Payload:    decodePayload(rawPayload),
			ReceivedAt: time.Now(),
			Cursor:     id,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating source %s rows: %w", r.src.ID, err)
	}
	return events, nil
}

// decodePayload parses a JSON payload column, wrapping non-JSON content so
// nothing is silently dropped.
func decodePayload(raw []byte) map[string]interface{} {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return map[string]interface{}{"raw": string(raw)}
	}
	return payload
}
