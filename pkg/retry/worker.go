package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/dlqentry"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/delivery"
)

// ErrNoEntriesDue signals an empty scan.
var ErrNoEntriesDue = errors.New("no DLQ entries due")

// ErrAlreadyReplayed rejects a second manual replay of the same entry.
var ErrAlreadyReplayed = errors.New("entry already replayed")

// Redeliverer re-executes a parked delivery. Implemented by the delivery
// engine.
type Redeliverer interface {
	Redeliver(ctx context.Context, in *config.Integration, parentTraceID, messageID, orgID string, actionIndex *int, payload map[string]interface{}, attempt int) error
}

// Worker scans the DLQ for due entries and re-drives them.
type Worker struct {
	client       *ent.Client
	cfg          *config.RetryConfig
	integrations *config.IntegrationRegistry
	engine       Redeliverer
	backoff      *Backoff

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker creates a DLQ scan worker.
func NewWorker(client *ent.Client, cfg *config.RetryConfig, integrations *config.IntegrationRegistry, engine Redeliverer, backoff *Backoff) *Worker {
	return &Worker{
		client:       client,
		cfg:          cfg,
		integrations: integrations,
		engine:       engine,
		backoff:      backoff,
		stopCh:       make(chan struct{}),
	}
}

// Start begins the scan loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for in-flight redeliveries.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	slog.Info("DLQ worker started", "scan_interval", w.cfg.ScanInterval)

	ticker := time.NewTicker(w.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			slog.Info("DLQ worker shutting down")
			return
		case <-ctx.Done():
			slog.Info("Context cancelled, DLQ worker shutting down")
			return
		case <-ticker.C:
			if err := w.scan(ctx); err != nil && !errors.Is(err, ErrNoEntriesDue) {
				slog.Error("DLQ scan failed", "error", err)
			}
			w.janitor(ctx)
		}
	}
}

// scan claims a batch of due entries and processes them sequentially.
func (w *Worker) scan(ctx context.Context) error {
	entries, err := w.claimDue(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		select {
		case <-w.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		default:
		}
		w.process(ctx, entry)
	}
	return nil
}

// claimDue atomically claims due queued entries using FOR UPDATE SKIP LOCKED
// so concurrent pods never double-deliver.
func (w *Worker) claimDue(ctx context.Context) ([]*ent.DLQEntry, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	entries, err := tx.DLQEntry.Query().
		Where(
			dlqentry.StatusEQ(dlqentry.StatusQueued),
			dlqentry.NextAttemptAtLTE(time.Now()),
		).
		Order(ent.Asc(dlqentry.FieldNextAttemptAt)).
		Limit(w.cfg.ScanBatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due DLQ entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntriesDue
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	if err := tx.DLQEntry.Update().
		Where(dlqentry.IDIn(ids...)).
		SetStatus(dlqentry.StatusRetrying).
		AddAttempts(1).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to claim DLQ entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	slog.Debug("Claimed DLQ batch", "count", len(entries))
	return entries, nil
}

// process re-drives one claimed entry and records the outcome.
func (w *Worker) process(ctx context.Context, entry *ent.DLQEntry) {
	attempt := entry.Attempts + 1
	log := slog.With("dlq_id", entry.ID, "integration_id", entry.IntegrationID, "attempt", attempt)

	in, err := w.integrations.Get(entry.IntegrationID)
	if err != nil {
		log.Warn("Integration no longer configured; abandoning DLQ entry")
		w.finish(entry.ID, dlqentry.StatusAbandoned, nil, "integration not found")
		return
	}
	if !in.IsActive {
		log.Info("Integration inactive; abandoning DLQ entry")
		w.finish(entry.ID, dlqentry.StatusAbandoned, nil, "integration inactive")
		return
	}

	err = w.engine.Redeliver(ctx, in, entry.TraceID, entry.MessageID, entry.OrgID, entry.ActionIndex, entry.Payload, attempt)
	if err == nil {
		log.Info("DLQ redelivery succeeded")
		// Terminal but kept: the entry is part of the audit trail until the
		// retention sweep reaps it.
		w.finish(entry.ID, dlqentry.StatusReplayed, nil, "")
		return
	}

	de := delivery.Classify(err)
	if !de.Kind.Retryable() || attempt > entry.MaxRetries {
		log.Warn("DLQ redelivery exhausted; abandoning",
			"error_code", de.Kind,
			"max_retries", entry.MaxRetries)
		w.finish(entry.ID, dlqentry.StatusAbandoned, nil, de.Error())
		return
	}

	next := time.Now().Add(w.backoff.Delay(attempt, 0))
	log.Info("DLQ redelivery failed; requeued", "error_code", de.Kind, "next_attempt_at", next)
	w.finish(entry.ID, dlqentry.StatusQueued, &next, de.Error())
}

// finish writes the terminal or requeue state for an entry. Uses a background
// context so shutdown does not lose state transitions.
func (w *Worker) finish(id string, status dlqentry.Status, nextAttempt *time.Time, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := w.client.DLQEntry.UpdateOneID(id).
		SetStatus(status).
		SetUpdatedAt(time.Now())
	if nextAttempt != nil {
		update = update.SetNextAttemptAt(*nextAttempt)
	} else {
		update = update.ClearNextAttemptAt()
	}
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}

	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to update DLQ entry", "dlq_id", id, "status", status, "error", err)
	}
}

// janitor returns entries stranded in RETRYING to the queue. A claim bumps
// updated_at, so anything retrying longer than the stuck threshold belongs to
// a worker that died mid-redelivery.
func (w *Worker) janitor(ctx context.Context) {
	threshold := w.cfg.StuckThreshold
	if threshold <= 0 {
		return
	}

	now := time.Now()
	reclaimed, err := w.client.DLQEntry.Update().
		Where(
			dlqentry.StatusEQ(dlqentry.StatusRetrying),
			dlqentry.UpdatedAtLT(now.Add(-threshold)),
		).
		SetStatus(dlqentry.StatusQueued).
		SetNextAttemptAt(now).
		Save(ctx)
	if err != nil {
		slog.Error("DLQ stuck sweep failed", "error", err)
	} else if reclaimed > 0 {
		slog.Warn("Reclaimed stranded DLQ entries", "count", reclaimed)
	}
}

// Replay immediately re-drives a DLQ entry regardless of its schedule.
// Used by the ops API; a successful replay is marked replayed rather than
// deleted so the audit trail survives.
func (w *Worker) Replay(ctx context.Context, id string) error {
	entry, err := w.client.DLQEntry.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load DLQ entry %s: %w", id, err)
	}
	if entry.Status == dlqentry.StatusReplayed {
		return fmt.Errorf("DLQ entry %s: %w", id, ErrAlreadyReplayed)
	}

	in, err := w.integrations.Get(entry.IntegrationID)
	if err != nil {
		return fmt.Errorf("integration %s not found", entry.IntegrationID)
	}

	attempt := entry.Attempts + 1
	if err := w.engine.Redeliver(ctx, in, entry.TraceID, entry.MessageID, entry.OrgID, entry.ActionIndex, entry.Payload, attempt); err != nil {
		de := delivery.Classify(err)
		w.finish(entry.ID, entry.Status, entry.NextAttemptAt, de.Error())
		return fmt.Errorf("replay failed: %w", err)
	}

	w.finish(entry.ID, dlqentry.StatusReplayed, nil, "")
	slog.Info("DLQ entry replayed", "dlq_id", id, "integration_id", entry.IntegrationID)
	return nil
}
