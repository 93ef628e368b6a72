package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/eventaudit"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/ent/processedevent"
	"github.com/relayforge/relayforge/pkg/config"
)

// Janitor enforces retention and relabels stalled events. One instance per
// process; sweeps are idempotent so multiple pods may overlap safely.
type Janitor struct {
	client *ent.Client
	cfg    *config.RetentionConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewJanitor creates a retention janitor.
func NewJanitor(client *ent.Client, cfg *config.RetentionConfig) *Janitor {
	return &Janitor{client: client, cfg: cfg, stopCh: make(chan struct{})}
}

// Start begins the sweep loop in a goroutine.
func (j *Janitor) Start(ctx context.Context) {
	j.wg.Add(1)
	go j.run(ctx)
}

// Stop signals the janitor to stop and waits for the current sweep.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() { close(j.stopCh) })
	j.wg.Wait()
}

func (j *Janitor) run(ctx context.Context) {
	defer j.wg.Done()

	slog.Info("Retention janitor started", "interval", j.cfg.CleanupInterval)

	ticker := time.NewTicker(j.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopCh:
			slog.Info("Retention janitor shutting down")
			return
		case <-ctx.Done():
			slog.Info("Context cancelled, retention janitor shutting down")
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs every maintenance pass once. Exported for the ops CLI.
func (j *Janitor) Sweep(ctx context.Context) {
	j.markStuck(ctx)
	j.expireEvents(ctx)
	j.expireDedupMarkers(ctx)
	j.expireExecutionLogs(ctx)
}

// markStuck relabels events parked in processing longer than the threshold,
// typically after a crash mid fan-out.
func (j *Janitor) markStuck(ctx context.Context) {
	n, err := j.client.EventAudit.Update().
		Where(
			eventaudit.StatusEQ(eventaudit.StatusProcessing),
			eventaudit.UpdatedAtLT(time.Now().Add(-j.cfg.StuckThreshold)),
		).
		SetStatus(eventaudit.StatusStuck).
		Save(ctx)
	if err != nil {
		slog.Error("Stuck-event sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Warn("Events marked stuck", "count", n, "threshold", j.cfg.StuckThreshold)
	}
}

func (j *Janitor) expireEvents(ctx context.Context) {
	n, err := j.client.EventAudit.Delete().
		Where(eventaudit.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		slog.Error("Event retention sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Expired event audits removed", "count", n)
	}
}

func (j *Janitor) expireDedupMarkers(ctx context.Context) {
	n, err := j.client.ProcessedEvent.Delete().
		Where(processedevent.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		slog.Error("Dedup marker sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Debug("Expired dedup markers removed", "count", n)
	}
}

// expireExecutionLogs removes logs past the retention window. Delivery
// attempts cascade on the foreign key but are also swept directly in case
// orphans exist from manual surgery.
func (j *Janitor) expireExecutionLogs(ctx context.Context) {
	cutoff := time.Now().Add(-j.cfg.LogRetention)

	n, err := j.client.ExecutionLog.Delete().
		Where(executionlog.StartedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Execution log retention sweep failed", "error", err)
		return
	}

	attempts, err := j.client.DeliveryAttempt.Delete().
		Where(deliveryattempt.AttemptedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Delivery attempt retention sweep failed", "error", err)
		return
	}

	if n > 0 || attempts > 0 {
		slog.Info("Expired execution logs removed", "logs", n, "attempts", attempts)
	}
}
