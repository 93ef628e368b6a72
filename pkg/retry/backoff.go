// Package retry parks failed deliveries in the dead letter queue and
// re-drives them with exponential backoff.
package retry

import (
	"math/rand/v2"
	"time"

	"github.com/relayforge/relayforge/pkg/config"
)

// Backoff computes redelivery delays: base * 2^attempt with full jitter,
// capped at MaxDelay. An endpoint Retry-After hint overrides the computed
// delay when it is longer.
type Backoff struct {
	base time.Duration
	max  time.Duration
}

// NewBackoff creates a backoff policy from retry config.
func NewBackoff(cfg *config.RetryConfig) *Backoff {
	return &Backoff{base: cfg.BaseDelay, max: cfg.MaxDelay}
}

// Delay returns the wait before the given attempt number (1-based: the delay
// before attempt 2 uses attempt=1).
func (b *Backoff) Delay(attempt int, retryAfter time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	ceiling := b.base
	for i := 0; i < attempt; i++ {
		ceiling *= 2
		if ceiling >= b.max {
			ceiling = b.max
			break
		}
	}

	// Full jitter: uniform in [0, ceiling].
	delay := time.Duration(rand.Int64N(int64(ceiling) + 1))

	if retryAfter > delay {
		delay = retryAfter
	}
	if delay > b.max {
		delay = b.max
	}
	return delay
}
