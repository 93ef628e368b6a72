package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/pkg/transform"
)

func testContext() transform.Context {
	return transform.Context{
		OrgID:         "org-1",
		IntegrationID: "int-1",
		Now:           time.Now(),
	}
}

func TestEvaluateDelayed_EpochMillis(t *testing.T) {
	e := NewEvaluator(5 * time.Second)
	at := time.Now().Add(2 * time.Hour)

	script := fmt.Sprintf(`function schedule(event, context) { return %d; }`, at.UnixMilli())
	plan, err := e.EvaluateDelayed(context.Background(), script, map[string]interface{}{}, testContext())

	require.NoError(t, err)
	assert.WithinDuration(t, at, plan.At, time.Second)
	assert.Nil(t, plan.Recurring)
}

func TestEvaluateDelayed_UsesEventPayload(t *testing.T) {
	e := NewEvaluator(5 * time.Second)
	at := time.Now().Add(24 * time.Hour)

	script := `function schedule(event, context) { return event.remindAt; }`
	plan, err := e.EvaluateDelayed(context.Background(), script,
		map[string]interface{}{"remindAt": at.UTC().Format(time.RFC3339)}, testContext())

	require.NoError(t, err)
	assert.WithinDuration(t, at, plan.At, time.Second)
}

func TestEvaluateDelayed_AcceptsPast(t *testing.T) {
	e := NewEvaluator(5 * time.Second)
	past := time.Now().Add(-time.Hour)

	// A past timestamp is valid input: the entry is due immediately and the
	// worker's overdue handling takes it from there.
	script := fmt.Sprintf(`function schedule() { return %d; }`, past.UnixMilli())
	plan, err := e.EvaluateDelayed(context.Background(), script, map[string]interface{}{}, testContext())

	require.NoError(t, err)
	assert.WithinDuration(t, past, plan.At, time.Second)
}

func TestEvaluateDelayed_RejectsBeyondHorizon(t *testing.T) {
	e := NewEvaluator(5 * time.Second)
	far := time.Now().Add(400 * 24 * time.Hour)

	script := fmt.Sprintf(`function schedule() { return %d; }`, far.UnixMilli())
	_, err := e.EvaluateDelayed(context.Background(), script, map[string]interface{}{}, testContext())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than a year")
}

func TestEvaluateRecurring_MaxOccurrences(t *testing.T) {
	e := NewEvaluator(5 * time.Second)
	first := time.Now().Add(time.Hour)

	script := fmt.Sprintf(`function schedule() {
		return { firstOccurrence: %d, intervalMs: 3600000, maxOccurrences: 10 };
	}`, first.UnixMilli())
	plan, err := e.EvaluateRecurring(context.Background(), script, map[string]interface{}{}, testContext())

	require.NoError(t, err)
	require.NotNil(t, plan.Recurring)
	assert.Equal(t, time.Hour, plan.Recurring.Interval)
	assert.Equal(t, 10, plan.Recurring.MaxOccurrences)
}

func TestEvaluateRecurring_Validation(t *testing.T) {
	e := NewEvaluator(5 * time.Second)
	first := time.Now().Add(time.Hour).UnixMilli()

	tests := []struct {
		name    string
		script  string
		wantErr string
	}{
		{
			name:    "interval below minimum",
			script:  fmt.Sprintf(`function schedule() { return { firstOccurrence: %d, intervalMs: 1000, maxOccurrences: 5 }; }`, first),
			wantErr: "below the",
		},
		{
			name:    "too few occurrences",
			script:  fmt.Sprintf(`function schedule() { return { firstOccurrence: %d, intervalMs: 60000, maxOccurrences: 1 }; }`, first),
			wantErr: "outside allowed range",
		},
		{
			name:    "too many occurrences",
			script:  fmt.Sprintf(`function schedule() { return { firstOccurrence: %d, intervalMs: 60000, maxOccurrences: 1000 }; }`, first),
			wantErr: "outside allowed range",
		},
		{
			name:    "no limit at all",
			script:  fmt.Sprintf(`function schedule() { return { firstOccurrence: %d, intervalMs: 60000 }; }`, first),
			wantErr: "requires maxOccurrences or endDate",
		},
		{
			name:    "end date before first",
			script:  fmt.Sprintf(`function schedule() { return { firstOccurrence: %d, intervalMs: 60000, endDate: %d }; }`, first, first-1000),
			wantErr: "endDate must be after",
		},
		{
			name:    "not an object",
			script:  `function schedule() { return 42; }`,
			wantErr: "must return an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.EvaluateRecurring(context.Background(), tt.script, map[string]interface{}{}, testContext())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNextOccurrence_DriftFree(t *testing.T) {
	first := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	rec := &Recurrence{Interval: time.Hour, MaxOccurrences: 3}

	next, ok := NextOccurrence(first, rec, 1)
	require.True(t, ok)
	assert.Equal(t, first.Add(time.Hour), next)

	next, ok = NextOccurrence(first, rec, 2)
	require.True(t, ok)
	assert.Equal(t, first.Add(2*time.Hour), next)

	_, ok = NextOccurrence(first, rec, 3)
	assert.False(t, ok, "series complete at max occurrences")
}

func TestNextOccurrence_EndDate(t *testing.T) {
	first := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	rec := &Recurrence{Interval: 24 * time.Hour, EndDate: first.Add(48 * time.Hour)}

	next, ok := NextOccurrence(first, rec, 1)
	require.True(t, ok)
	assert.Equal(t, first.Add(24*time.Hour), next)

	next, ok = NextOccurrence(first, rec, 2)
	require.True(t, ok)
	assert.Equal(t, first.Add(48*time.Hour), next)

	_, ok = NextOccurrence(first, rec, 3)
	assert.False(t, ok, "next occurrence would pass the end date")
}

func TestDecodeRecurring_Roundtrip(t *testing.T) {
	first := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	raw := map[string]interface{}{
		"first_occurrence": first.Format(time.RFC3339Nano),
		"interval_ms":      float64(3600000),
		"occurrence":       float64(2),
		"max_occurrences":  float64(5),
	}

	rec, gotFirst, occurrence, ok := decodeRecurring(raw)
	require.True(t, ok)
	assert.Equal(t, time.Hour, rec.Interval)
	assert.Equal(t, 5, rec.MaxOccurrences)
	assert.True(t, gotFirst.Equal(first))
	assert.Equal(t, 2, occurrence)
}

func TestDecodeRecurring_Empty(t *testing.T) {
	_, _, _, ok := decodeRecurring(nil)
	assert.False(t, ok)
}
