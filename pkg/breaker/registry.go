// Package breaker guards failing endpoints with per-integration circuit
// breakers and enforces the auto-disable policy.
package breaker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/ent/circuitstate"
	"github.com/relayforge/relayforge/pkg/config"
)

// ErrCircuitOpen is returned when a delivery is refused because the
// integration's circuit is open.
var ErrCircuitOpen = gobreaker.ErrOpenState

// ErrTooManyRequests is returned when the half-open probe slot is already
// held by an in-flight request. The delivery was refused, not attempted.
var ErrTooManyRequests = gobreaker.ErrTooManyRequests

// DisableFunc is invoked when an integration crosses the auto-disable
// threshold. Implementations deactivate the integration and raise an alert.
type DisableFunc func(ctx context.Context, integrationID string, consecutiveFailures int)

// Registry holds one breaker per integration. Breakers are created lazily on
// first use and snapshotted to the database so state survives inspection
// across restarts.
type Registry struct {
	cfg       *config.BreakerConfig
	client    *ent.Client
	onDisable DisableFunc

	mu       sync.Mutex
	breakers map[string]*entry
}

type entry struct {
	cb *gobreaker.CircuitBreaker

	// consecutive counts failures across open/half-open cycles for the
	// auto-disable policy; gobreaker resets its own counts on state change.
	consecutive int
	disabled    bool
}

// NewRegistry creates a breaker registry. onDisable may be nil, in which case
// the auto-disable policy only logs.
func NewRegistry(cfg *config.BreakerConfig, client *ent.Client, onDisable DisableFunc) *Registry {
	return &Registry{
		cfg:       cfg,
		client:    client,
		onDisable: onDisable,
		breakers:  make(map[string]*entry),
	}
}

// Allow reports whether a delivery for the integration may proceed.
// Open circuits short-circuit before any network work.
func (r *Registry) Allow(integrationID string) bool {
	e := r.get(integrationID)
	if e.disabled {
		return false
	}
	return e.cb.State() != gobreaker.StateOpen
}

// Execute runs fn under the integration's breaker. A failure return counts
// toward opening the circuit; ErrCircuitOpen is returned without calling fn
// when the circuit is open.
func (r *Registry) Execute(ctx context.Context, integrationID string, fn func() error) error {
	e := r.get(integrationID)
	_, err := e.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})

	r.mu.Lock()
	if err != nil && err != gobreaker.ErrOpenState && err != gobreaker.ErrTooManyRequests {
		e.consecutive++
	} else if err == nil {
		e.consecutive = 0
	}
	consecutive := e.consecutive
	shouldDisable := r.cfg.AutoDisableThreshold > 0 &&
		consecutive >= r.cfg.AutoDisableThreshold && !e.disabled
	if shouldDisable {
		e.disabled = true
	}
	r.mu.Unlock()

	if shouldDisable {
		slog.Error("Integration crossed auto-disable threshold",
			"integration_id", integrationID,
			"consecutive_failures", consecutive)
		if r.onDisable != nil {
			r.onDisable(ctx, integrationID, consecutive)
		}
	}

	r.snapshot(integrationID, e)
	return err
}

// State returns the breaker state label for an integration.
func (r *Registry) State(integrationID string) string {
	return stateLabel(r.get(integrationID).cb.State())
}

func (r *Registry) get(integrationID string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.breakers[integrationID]; ok {
		return e
	}

	e := &entry{}
	e.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        integrationID,
		MaxRequests: 1, // single half-open probe
		Timeout:     r.cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= r.cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("Circuit state changed",
				"integration_id", name,
				"from", stateLabel(from),
				"to", stateLabel(to))
		},
	})
	r.breakers[integrationID] = e
	return e
}

// snapshot upserts the persisted circuit row. Best-effort diagnostics only.
func (r *Registry) snapshot(integrationID string, e *entry) {
	if r.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state := circuitStateValue(e.cb.State())
	now := time.Now()

	create := r.client.CircuitState.Create().
		SetID(uuid.New().String()).
		SetIntegrationID(integrationID).
		SetConsecutiveFailures(e.consecutive).
		SetState(state).
		SetUpdatedAt(now)
	if state != circuitstate.StateClosed {
		create = create.SetOpenedAt(now).SetNextProbeAt(now.Add(r.cfg.Cooldown))
	}

	err := create.
		OnConflictColumns(circuitstate.FieldIntegrationID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to snapshot circuit state",
			"integration_id", integrationID,
			"error", err)
	}
}

func stateLabel(s gobreaker.State) string {
	switch s {
	case gobreaker.StateOpen:
		return "open"
	case gobreaker.StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

func circuitStateValue(s gobreaker.State) circuitstate.State {
	switch s {
	case gobreaker.StateOpen:
		return circuitstate.StateOpen
	case gobreaker.StateHalfOpen:
		return circuitstate.StateHalfOpen
	default:
		return circuitstate.StateClosed
	}
}
