package alerts

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/alertlog"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/pkg/config"
)

// Service aggregates failures and dispatches digests.
// Nil-safe: all methods are no-ops when the service is nil, so alerting can
// be disabled by simply not configuring channels.
type Service struct {
	client   *ent.Client
	cfg      *config.AlertConfig
	channels *config.AlertChannelRegistry
	adapters map[string]Adapter
	logger   *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewService creates the alert service. Returns nil when no channels are
// configured.
func NewService(client *ent.Client, cfg *config.AlertConfig, channels *config.AlertChannelRegistry, adapters ...Adapter) *Service {
	if channels == nil || channels.Len() == 0 {
		return nil
	}
	m := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Key()] = a
	}
	return &Service{
		client:   client,
		cfg:      cfg,
		channels: channels,
		adapters: m,
		logger:   slog.Default().With("component", "alert-service"),
		stopCh:   make(chan struct{}),
	}
}

// Start begins the digest loop. No-op on a nil service.
func (s *Service) Start(ctx context.Context) {
	if s == nil {
		return
	}
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop halts the digest loop. Safe on a nil service.
func (s *Service) Stop() {
	if s == nil {
		return
	}
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Service) run(ctx context.Context) {
	defer s.wg.Done()

	s.logger.Info("Alert service started", "window", s.cfg.Window, "interval", s.cfg.Interval)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			s.logger.Info("Alert service shutting down")
			return
		case <-ctx.Done():
			s.logger.Info("Context cancelled, alert service shutting down")
			return
		case <-ticker.C:
			s.evaluate(ctx)
		}
	}
}

// evaluate scans the failure window and sends one digest per (org,
// integration) that crossed the threshold and was not already alerted for
// this window.
func (s *Service) evaluate(ctx context.Context) {
	windowEnd := time.Now()
	windowStart := windowEnd.Add(-s.cfg.Window)

	failures, err := s.client.ExecutionLog.Query().
		Where(
			executionlog.StatusEQ(executionlog.StatusFailed),
			executionlog.StartedAtGTE(windowStart),
			executionlog.StartedAtLT(windowEnd),
		).
		Order(ent.Desc(executionlog.FieldStartedAt)).
		All(ctx)
	if err != nil {
		s.logger.Error("Failed to query failure window", "error", err)
		return
	}
	if len(failures) == 0 {
		return
	}

	for _, d := range s.aggregate(failures, windowStart, windowEnd) {
		if d.TotalFailures < s.cfg.MinFailures {
			continue
		}
		alreadySent, err := s.alreadyAlerted(ctx, d)
		if err != nil {
			s.logger.Error("Failed to check alert history", "error", err)
			continue
		}
		if alreadySent {
			continue
		}
		s.Dispatch(ctx, d)
	}
}

// aggregate groups failed executions per (org, integration).
func (s *Service) aggregate(failures []*ent.ExecutionLog, windowStart, windowEnd time.Time) []*Digest {
	byKey := make(map[string]*Digest)
	var order []string

	for _, f := range failures {
		key := f.OrgID + "|" + f.IntegrationID
		d, ok := byKey[key]
		if !ok {
			d = &Digest{
				OrgID:           f.OrgID,
				IntegrationID:   f.IntegrationID,
				IntegrationName: f.IntegrationName,
				WindowStart:     windowStart,
				WindowEnd:       windowEnd,
				ByErrorKind:     make(map[string]int),
				DashboardURL:    s.cfg.DashboardURL,
			}
			byKey[key] = d
			order = append(order, key)
		}

		d.TotalFailures++
		kind := "UNKNOWN"
		if f.ErrorKind != nil && *f.ErrorKind != "" {
			kind = *f.ErrorKind
		}
		d.ByErrorKind[kind]++

		if len(d.Samples) < s.cfg.SampleLimit {
			msg := ""
			if f.ErrorMessage != nil {
				msg = *f.ErrorMessage
			}
			d.Samples = append(d.Samples, Sample{
				TraceID:      f.ID,
				ErrorKind:    kind,
				ErrorMessage: msg,
				OccurredAt:   f.StartedAt,
			})
		}
	}

	out := make([]*Digest, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out
}

// alreadyAlerted suppresses repeat digests while the window still overlaps
// the last alert for the same integration.
func (s *Service) alreadyAlerted(ctx context.Context, d *Digest) (bool, error) {
	n, err := s.client.AlertLog.Query().
		Where(
			alertlog.OrgIDEQ(d.OrgID),
			alertlog.IntegrationIDEQ(d.IntegrationID),
			alertlog.StatusEQ(alertlog.StatusSent),
			alertlog.WindowEndGT(d.WindowStart),
		).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Dispatch sends one digest through every channel configured for the org and
// records an alert log per channel. Fail-open: adapter errors are logged.
func (s *Service) Dispatch(ctx context.Context, d *Digest) {
	if s == nil {
		return
	}

	channels := s.channels.ForOrg(d.OrgID)
	if len(channels) == 0 {
		s.record(ctx, d, "none", nil, alertlog.StatusSkipped, "no channels configured")
		return
	}

	for _, ch := range channels {
		adapter, ok := s.adapters[ch.Key()]
		if !ok {
			s.logger.Warn("No adapter for alert channel", "channel", ch.Key(), "org_id", d.OrgID)
			s.record(ctx, d, ch.Key(), ch.Recipients, alertlog.StatusSkipped, "no adapter")
			continue
		}
		if err := adapter.Verify(ch); err != nil {
			s.logger.Warn("Alert channel misconfigured", "channel", ch.Key(), "error", err)
			s.record(ctx, d, ch.Key(), ch.Recipients, alertlog.StatusSkipped, err.Error())
			continue
		}

		response, err := adapter.Send(ctx, ch, d)
		if err != nil {
			s.logger.Error("Failed to send alert digest",
				"channel", ch.Key(),
				"org_id", d.OrgID,
				"integration_id", d.IntegrationID,
				"error", err)
			s.record(ctx, d, ch.Key(), ch.Recipients, alertlog.StatusFailed, err.Error())
			continue
		}

		s.logger.Info("Alert digest sent",
			"channel", ch.Key(),
			"org_id", d.OrgID,
			"integration_id", d.IntegrationID,
			"failures", d.TotalFailures)
		s.record(ctx, d, ch.Key(), ch.Recipients, alertlog.StatusSent, response)
	}
}

// NotifyAutoDisabled sends the immediate auto-disable notice, bypassing the
// window. Safe on a nil service.
func (s *Service) NotifyAutoDisabled(ctx context.Context, orgID, integrationID, integrationName string, consecutiveFailures int) {
	if s == nil {
		return
	}
	s.Dispatch(ctx, AutoDisabledDigest(orgID, integrationID, integrationName, consecutiveFailures, s.cfg.DashboardURL))
}

// record writes the alert log row. Uses a background context so the row
// survives shutdown-driven cancellation.
func (s *Service) record(_ context.Context, d *Digest, channel string, recipients []string, status alertlog.Status, response string) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.AlertLog.Create().
		SetID(uuid.New().String()).
		SetOrgID(d.OrgID).
		SetIntegrationID(d.IntegrationID).
		SetChannel(channel).
		SetStatus(status).
		SetTotalFailures(d.TotalFailures).
		SetWindowStart(d.WindowStart).
		SetWindowEnd(d.WindowEnd)
	if len(recipients) > 0 {
		create = create.SetRecipients(recipients)
	}
	if response != "" {
		create = create.SetProviderResponse(response)
	}

	if err := create.Exec(writeCtx); err != nil {
		s.logger.Warn("Failed to record alert log", "error", err)
	}
}
