package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/relayforge/relayforge/pkg/config"
)

func newTestBackoff() *Backoff {
	return NewBackoff(&config.RetryConfig{
		BaseDelay: time.Second,
		MaxDelay:  5 * time.Minute,
	})
}

func TestDelay_WithinJitterCeiling(t *testing.T) {
	b := newTestBackoff()

	tests := []struct {
		attempt int
		ceiling time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{10, 5 * time.Minute},
	}

	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			d := b.Delay(tt.attempt, 0)
			assert.GreaterOrEqual(t, d, time.Duration(0), "attempt %d", tt.attempt)
			assert.LessOrEqual(t, d, tt.ceiling, "attempt %d", tt.attempt)
		}
	}
}

func TestDelay_CappedAtMax(t *testing.T) {
	b := newTestBackoff()

	for i := 0; i < 50; i++ {
		assert.LessOrEqual(t, b.Delay(30, 0), 5*time.Minute)
	}
}

func TestDelay_RetryAfterOverridesShorterJitter(t *testing.T) {
	b := newTestBackoff()

	// Ceiling for attempt 0 is 1s; a 30s Retry-After must win.
	d := b.Delay(0, 30*time.Second)
	assert.Equal(t, 30*time.Second, d)
}

func TestDelay_RetryAfterStillCapped(t *testing.T) {
	b := newTestBackoff()
	assert.Equal(t, 5*time.Minute, b.Delay(0, time.Hour))
}

func TestDelay_NegativeAttempt(t *testing.T) {
	b := newTestBackoff()
	d := b.Delay(-3, 0)
	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, time.Second)
}
