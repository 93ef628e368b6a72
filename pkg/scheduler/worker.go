package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/scheduledentry"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/delivery"
	"github.com/relayforge/relayforge/pkg/models"
	"github.com/relayforge/relayforge/pkg/trace"
)

// ErrNoEntriesDue signals an empty tick.
var ErrNoEntriesDue = errors.New("no scheduled entries due")

// Dispatcher runs a scheduled delivery. Implemented by the delivery engine.
type Dispatcher interface {
	Deliver(ctx context.Context, event *models.Event, in *config.Integration, trigger trace.TriggerType, messageID string) delivery.Outcome
}

// Worker scans for due scheduled entries, leases them, and dispatches.
type Worker struct {
	podID        string
	client       *ent.Client
	cfg          *config.SchedulerConfig
	integrations *config.IntegrationRegistry
	service      *Service
	dispatcher   Dispatcher

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker creates a scheduling worker. podID identifies the lease holder.
func NewWorker(podID string, client *ent.Client, cfg *config.SchedulerConfig, integrations *config.IntegrationRegistry, service *Service, dispatcher Dispatcher) *Worker {
	return &Worker{
		podID:        podID,
		client:       client,
		cfg:          cfg,
		integrations: integrations,
		service:      service,
		dispatcher:   dispatcher,
		stopCh:       make(chan struct{}),
	}
}

// Start begins the tick loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for in-flight dispatches.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("pod_id", w.podID)
	log.Info("Scheduler worker started", "tick_interval", w.cfg.TickInterval)

	ticker := time.NewTicker(w.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			log.Info("Scheduler worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, scheduler worker shutting down")
			return
		case <-ticker.C:
			if err := w.tick(ctx); err != nil && !errors.Is(err, ErrNoEntriesDue) {
				log.Error("Scheduler tick failed", "error", err)
			}
			w.janitor(ctx)
		}
	}
}

// tick claims a batch of due entries and dispatches them sequentially.
func (w *Worker) tick(ctx context.Context) error {
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
		w.dispatch(ctx, entry)
	}
	return nil
}

// claimDue leases due pending and overdue entries with FOR UPDATE SKIP
// LOCKED. The skew widens the window so small clock drift between pods does
// not delay dispatch. Overdue entries stay claimable: the relabel is for
// operator visibility, not a dead end.
func (w *Worker) claimDue(ctx context.Context) ([]*ent.ScheduledEntry, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	entries, err := tx.ScheduledEntry.Query().
		Where(
			scheduledentry.StatusIn(scheduledentry.StatusPending, scheduledentry.StatusOverdue),
			scheduledentry.ScheduledForLTE(now.Add(w.cfg.Skew)),
		).
		Order(ent.Asc(scheduledentry.FieldScheduledFor)).
		Limit(w.cfg.BatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntriesDue
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	if err := tx.ScheduledEntry.Update().
		Where(scheduledentry.IDIn(ids...)).
		SetStatus(scheduledentry.StatusProcessing).
		SetLeasedBy(w.podID).
		SetLeasedUntil(now.Add(w.cfg.LeaseDuration)).
		AddAttemptCount(1).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to lease entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lease: %w", err)
	}

	slog.Debug("Leased scheduled batch", "count", len(entries), "pod_id", w.podID)
	return entries, nil
}

// dispatch delivers one leased entry and records the outcome.
func (w *Worker) dispatch(ctx context.Context, entry *ent.ScheduledEntry) {
	log := slog.With("schedule_id", entry.ID, "integration_id", entry.IntegrationID)

	in, err := w.integrations.Get(entry.IntegrationID)
	if err != nil || !in.IsActive {
		log.Warn("Integration missing or inactive; marking entry failed")
		w.finish(entry.ID, scheduledentry.StatusFailed, "integration not available")
		return
	}

	event := &models.Event{
		ID:        entry.OriginalEventID,
		OrgID:     entry.OrgID,
		EventType: entry.EventType,
		Payload:   entry.Payload,
	}

	outcome := w.dispatcher.Deliver(ctx, event, in, trace.TriggerSchedule, entry.ID)
	switch {
	case outcome.Delivered() || outcome.AllSkipped():
		w.finish(entry.ID, scheduledentry.StatusSent, "")
		log.Info("Scheduled entry dispatched", "succeeded", outcome.Succeeded, "skipped", outcome.Skipped)

		// The next occurrence exists only once this one lands; a failed
		// dispatch ends the series.
		if next, err := w.service.SpawnNext(ctx, entry); err != nil {
			log.Error("Failed to spawn next recurrence", "error", err)
		} else if next != nil {
			log.Info("Next recurrence scheduled", "next_schedule_id", next.ID, "scheduled_for", next.ScheduledFor)
		}
	default:
		// Failed actions are already parked in the DLQ by the engine; the
		// entry itself is terminal.
		w.finish(entry.ID, scheduledentry.StatusFailed, fmt.Sprintf("%d of %d actions failed", outcome.Failed, outcome.Total))
		log.Warn("Scheduled entry dispatch failed", "failed", outcome.Failed, "total", outcome.Total)
	}
}

// finish writes a terminal status and releases the lease. Background context
// so shutdown does not strand processing entries.
func (w *Worker) finish(id string, status scheduledentry.Status, lastError string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := w.client.ScheduledEntry.UpdateOneID(id).
		SetStatus(status).
		ClearLeasedBy().
		ClearLeasedUntil().
		SetUpdatedAt(time.Now())
	if lastError != "" {
		update = update.SetLastError(lastError)
	}

	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to finalize scheduled entry", "schedule_id", id, "status", status, "error", err)
	}
}

// janitor recovers expired leases and flags entries that drifted too far past
// their dispatch time.
func (w *Worker) janitor(ctx context.Context) {
	now := time.Now()

	// Expired leases go back to pending for another pod to claim.
	reclaimed, err := w.client.ScheduledEntry.Update().
		Where(
			scheduledentry.StatusEQ(scheduledentry.StatusProcessing),
			scheduledentry.LeasedUntilLT(now),
		).
		SetStatus(scheduledentry.StatusPending).
		ClearLeasedBy().
		ClearLeasedUntil().
		Save(ctx)
	if err != nil {
		slog.Error("Lease recovery failed", "error", err)
	} else if reclaimed > 0 {
		slog.Warn("Recovered expired scheduling leases", "count", reclaimed)
	}

	// Pending entries far past due are relabeled so operators can spot
	// downtime gaps; claimDue still picks them up and dispatches once.
	overdue, err := w.client.ScheduledEntry.Update().
		Where(
			scheduledentry.StatusEQ(scheduledentry.StatusPending),
			scheduledentry.ScheduledForLT(now.Add(-w.cfg.OverdueWindow)),
		).
		SetStatus(scheduledentry.StatusOverdue).
		Save(ctx)
	if err != nil {
		slog.Error("Overdue sweep failed", "error", err)
	} else if overdue > 0 {
		slog.Warn("Scheduled entries marked overdue", "count", overdue)
	}
}
