package ingest

import (
	"context"
	"log/slog"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/delivery"
	"github.com/relayforge/relayforge/pkg/match"
	"github.com/relayforge/relayforge/pkg/models"
	"github.com/relayforge/relayforge/pkg/scheduler"
	"github.com/relayforge/relayforge/pkg/trace"
)

// Pipeline runs an admitted event through matching, delivery, and scheduling,
// then settles the audit status.
type Pipeline struct {
	store     *Store
	matcher   *match.Matcher
	engine    *delivery.Engine
	scheduler *scheduler.Service
}

// NewPipeline wires the ingestion pipeline.
func NewPipeline(store *Store, matcher *match.Matcher, engine *delivery.Engine, sched *scheduler.Service) *Pipeline {
	return &Pipeline{store: store, matcher: matcher, engine: engine, scheduler: sched}
}

// Handle is the source poller handler: admit, match, dispatch, settle.
// Returning an error leaves the source checkpoint in place.
func (p *Pipeline) Handle(ctx context.Context, event *models.Event) error {
	admitted, err := p.store.TryInsert(ctx, event)
	if err != nil {
		return err
	}
	if !admitted {
		return nil
	}

	log := slog.With("event_id", event.ID, "event_type", event.EventType, "org_id", event.OrgID)

	matched := p.matcher.Match(event)
	if len(matched) == 0 {
		if err := p.store.MarkSkipped(ctx, event.ID, "no matching integrations"); err != nil {
			log.Warn("Failed to mark event skipped", "error", err)
		}
		return nil
	}

	if err := p.store.MarkProcessing(ctx, event.ID); err != nil {
		log.Warn("Failed to mark event processing", "error", err)
	}

	var total delivery.Outcome
	for _, in := range matched {
		switch in.DeliveryMode {
		case config.DeliveryDelayed, config.DeliveryRecurring:
			if _, err := p.scheduler.PlanForEvent(ctx, event, in); err != nil {
				log.Error("Failed to schedule delivery",
					"integration_id", in.ID, "error", err)
				total.Failed++
			} else {
				total.Succeeded++
			}
			total.Total++
		default:
			outcome := p.engine.Deliver(ctx, event, in, trace.TriggerEvent, event.ID)
			total.Total += outcome.Total
			total.Succeeded += outcome.Succeeded
			total.Failed += outcome.Failed
			total.Skipped += outcome.Skipped
		}
	}

	p.settle(ctx, event.ID, total, log)
	return nil
}

// settle writes the terminal audit status for the fan-out. Failures here are
// logged, not returned: the event was already dispatched and must not be
// re-polled.
func (p *Pipeline) settle(ctx context.Context, eventID string, total delivery.Outcome, log *slog.Logger) {
	var err error
	switch {
	case total.Failed > 0:
		err = p.store.MarkFailed(ctx, eventID, total.Failed, total.Total)
	case total.Succeeded > 0:
		err = p.store.MarkDelivered(ctx, eventID, total.Succeeded)
	default:
		err = p.store.MarkSkipped(ctx, eventID, "all integrations gated off")
	}
	if err != nil {
		log.Warn("Failed to settle event status", "error", err)
	}
}
