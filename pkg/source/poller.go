package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/models"
)

// poisonThreshold is how many consecutive failures a single row gets before
// the poller skips past it so the stream is not blocked.
const poisonThreshold = 3

// Reader is one pollable event stream.
type Reader interface {
	Identifier() string
	Fetch(ctx context.Context, after int64, limit int) ([]*models.Event, error)
}

// Handler consumes a fetched event. A non-nil error leaves the checkpoint in
// place so the event is retried next poll.
type Handler func(ctx context.Context, event *models.Event) error

// Checkpoints is the high-water mark store used by the poll loops.
type Checkpoints interface {
	Get(ctx context.Context, source, identifier, orgID string) (int64, error)
	Advance(ctx context.Context, source, identifier, orgID string, id int64) error
}

// Poller runs one poll loop per configured source.
type Poller struct {
	cfg         *config.PollerConfig
	checkpoints Checkpoints
	handler     Handler

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoller creates a poller that feeds events to handler.
func NewPoller(cfg *config.PollerConfig, checkpoints Checkpoints, handler Handler) *Poller {
	return &Poller{
		cfg:         cfg,
		checkpoints: checkpoints,
		handler:     handler,
		stopCh:      make(chan struct{}),
	}
}

// Run starts a poll loop for each reader. Call Stop to drain.
func (p *Poller) Run(ctx context.Context, sources []*config.Source, readers map[string]Reader) {
	for _, src := range sources {
		reader, ok := readers[src.ID]
		if !ok {
			slog.Warn("No reader for configured source", "source_id", src.ID)
			continue
		}
		p.wg.Add(1)
		go p.loop(ctx, src, reader)
	}
}

// Stop signals all loops to stop and waits for them.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// loop polls one stream forever, backing off exponentially on transient
// failures and resetting to the base interval on success.
func (p *Poller) loop(ctx context.Context, src *config.Source, reader Reader) {
	defer p.wg.Done()

	log := slog.With("source_id", src.ID, "org_id", src.OrgID)
	log.Info("Source poller started", "type", src.Type, "identifier", reader.Identifier())

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = p.cfg.PollInterval
	policy.MaxInterval = p.cfg.MaxBackoff
	policy.MaxElapsedTime = 0 // never give up
	policy.Reset()

	// Per-row consecutive failure counts for poison-pill detection.
	failures := make(map[string]int)

	for {
		wait := p.cfg.PollInterval

		processed, err := p.pollOnce(ctx, src, reader, failures)
		switch {
		case err != nil:
			wait = policy.NextBackOff()
			log.Warn("Source poll failed", "error", err, "retry_in", wait)
		default:
			policy.Reset()
			if processed > 0 {
				log.Debug("Source poll processed events", "count", processed)
				// Keep draining a backlog without waiting a full interval.
				wait = 0
			}
		}

		select {
		case <-p.stopCh:
			log.Info("Source poller shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, source poller shutting down")
			return
		case <-time.After(wait):
		}
	}
}

// pollOnce fetches one batch and processes it in order, advancing the
// checkpoint row by row.
func (p *Poller) pollOnce(ctx context.Context, src *config.Source, reader Reader, failures map[string]int) (int, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.cfg.DBTimeout)
	defer cancel()

	after, err := p.checkpoints.Get(fetchCtx, src.ID, reader.Identifier(), src.OrgID)
	if err != nil {
		return 0, err
	}

	events, err := reader.Fetch(fetchCtx, after, p.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, event := range events {
		if err := p.handler(ctx, event); err != nil {
			key := event.SourceID
			failures[key]++
			if failures[key] < poisonThreshold {
				// Stop here; the checkpoint stays put and this row retries
				// next poll.
				return processed, fmt.Errorf("handling event %s: %w", key, err)
			}
			slog.Error("Skipping poison event after repeated failures",
				"source_id", src.ID,
				"source_row_id", key,
				"failures", failures[key],
				"error", err)
			delete(failures, key)
		} else {
			delete(failures, event.SourceID)
		}

		if err := p.checkpoints.Advance(ctx, src.ID, reader.Identifier(), src.OrgID, event.Cursor); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}
