// Package scheduler plans and dispatches DELAYED and RECURRING deliveries.
package scheduler

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/relayforge/relayforge/pkg/sandbox"
	"github.com/relayforge/relayforge/pkg/transform"
)

// Plan is the validated output of a scheduling script.
type Plan struct {
	// At is the single dispatch time for DELAYED integrations and the first
	// occurrence for RECURRING ones.
	At time.Time

	// Recurring holds recurrence parameters; nil for DELAYED.
	Recurring *Recurrence
}

// Recurrence describes a RECURRING plan. Exactly one of MaxOccurrences or
// EndDate limits the series.
type Recurrence struct {
	Interval       time.Duration
	MaxOccurrences int
	EndDate        time.Time

	// first anchors drift-free occurrence math when the recurrence is
	// decoded from a persisted entry.
	first time.Time
}

// Scheduling bounds.
const (
	maxFutureHorizon = 365 * 24 * time.Hour
	minInterval      = 60 * time.Second
	minOccurrences   = 2
	maxOccurrences   = 365
	scriptEntryPoint = "schedule"
)

// Evaluator runs scheduling scripts and validates their output.
type Evaluator struct {
	runner *sandbox.Runner
}

// NewEvaluator creates a scheduling evaluator with the given execution cap.
func NewEvaluator(timeout time.Duration) *Evaluator {
	return &Evaluator{runner: sandbox.NewRunner(timeout)}
}

// EvaluateDelayed runs the script and validates a single dispatch timestamp.
// Past timestamps are accepted: the entry is due on the next tick, and the
// worker relabels it OVERDUE once it drifts past the grace window.
func (e *Evaluator) EvaluateDelayed(ctx context.Context, script string, event map[string]interface{}, tctx transform.Context) (*Plan, error) {
	result, err := e.run(ctx, script, event, tctx)
	if err != nil {
		return nil, err
	}

	at, err := parseTimestamp(result)
	if err != nil {
		return nil, fmt.Errorf("delayed scheduling script: %w", err)
	}
	if err := validateHorizon(at, tctx.Now); err != nil {
		return nil, err
	}
	return &Plan{At: at}, nil
}

// EvaluateRecurring runs the script and validates a recurrence config object:
// {firstOccurrence, intervalMs, maxOccurrences | endDate}.
func (e *Evaluator) EvaluateRecurring(ctx context.Context, script string, event map[string]interface{}, tctx transform.Context) (*Plan, error) {
	result, err := e.run(ctx, script, event, tctx)
	if err != nil {
		return nil, err
	}

	obj, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("recurring scheduling script must return an object, got %T", result)
	}

	first, err := parseTimestamp(obj["firstOccurrence"])
	if err != nil {
		return nil, fmt.Errorf("recurring firstOccurrence: %w", err)
	}
	if err := validateHorizon(first, tctx.Now); err != nil {
		return nil, err
	}

	intervalMs, ok := toFloat(obj["intervalMs"])
	if !ok {
		return nil, fmt.Errorf("recurring intervalMs is required")
	}
	interval := time.Duration(intervalMs) * time.Millisecond
	if interval < minInterval {
		return nil, fmt.Errorf("recurring interval %v is below the %v minimum", interval, minInterval)
	}

	rec := &Recurrence{Interval: interval}

	maxOcc, hasMax := toFloat(obj["maxOccurrences"])
	endRaw, hasEnd := obj["endDate"]
	switch {
	case hasMax && hasEnd:
		return nil, fmt.Errorf("recurring plan must set maxOccurrences or endDate, not both")
	case hasMax:
		n := int(maxOcc)
		if n < minOccurrences || n > maxOccurrences {
			return nil, fmt.Errorf("maxOccurrences %d outside allowed range [%d, %d]", n, minOccurrences, maxOccurrences)
		}
		rec.MaxOccurrences = n
	case hasEnd:
		end, err := parseTimestamp(endRaw)
		if err != nil {
			return nil, fmt.Errorf("recurring endDate: %w", err)
		}
		if !end.After(first) {
			return nil, fmt.Errorf("recurring endDate must be after firstOccurrence")
		}
		rec.EndDate = end
	default:
		return nil, fmt.Errorf("recurring plan requires maxOccurrences or endDate")
	}

	return &Plan{At: first, Recurring: rec}, nil
}

func (e *Evaluator) run(ctx context.Context, script string, event map[string]interface{}, tctx transform.Context) (interface{}, error) {
	compiled, err := sandbox.Compile("schedule", script)
	if err != nil {
		return nil, err
	}
	return e.runner.Call(ctx, compiled, scriptEntryPoint,
		map[string]interface{}{}, event, tctx.ScriptContext())
}

// NextOccurrence returns the drift-free next dispatch time, or false when the
// series is complete. occurrence is 1-based for the entry just dispatched.
func NextOccurrence(first time.Time, rec *Recurrence, occurrence int) (time.Time, bool) {
	next := first.Add(time.Duration(occurrence) * rec.Interval)
	if rec.MaxOccurrences > 0 && occurrence >= rec.MaxOccurrences {
		return time.Time{}, false
	}
	if !rec.EndDate.IsZero() && next.After(rec.EndDate) {
		return time.Time{}, false
	}
	return next, true
}

func validateHorizon(at, now time.Time) error {
	if at.After(now.Add(maxFutureHorizon)) {
		return fmt.Errorf("scheduled time %s is more than a year out", at.Format(time.RFC3339))
	}
	return nil
}

// parseTimestamp accepts epoch millis and RFC3339 strings.
func parseTimestamp(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case float64:
		if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return time.Time{}, fmt.Errorf("invalid epoch value %v", t)
		}
		return time.UnixMilli(int64(t)).UTC(), nil
	case int64:
		if t <= 0 {
			return time.Time{}, fmt.Errorf("invalid epoch value %d", t)
		}
		return time.UnixMilli(t).UTC(), nil
	case string:
		at, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("unparseable timestamp %q", t)
		}
		return at.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	}
	return 0, false
}
