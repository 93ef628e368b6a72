package config

import "time"

// clampDuration bounds d to [min, max], substituting def when unset.
func clampDuration(d, def, min, max time.Duration) time.Duration {
	if d <= 0 {
		d = def
	}
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

// clampInt bounds n to [min, max], substituting def when unset.
func clampInt(n, def, min, max int) int {
	if n == 0 {
		n = def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// applyBounds enforces the documented operational bounds after load.
func (c *Config) applyBounds() {
	c.Poller.PollInterval = clampDuration(c.Poller.PollInterval, 5*time.Second, time.Second, 300*time.Second)
	c.Poller.BatchSize = clampInt(c.Poller.BatchSize, 10, 1, 100)
	c.Poller.DBTimeout = clampDuration(c.Poller.DBTimeout, 30*time.Second, time.Second, 120*time.Second)
	c.Poller.MaxBackoff = clampDuration(c.Poller.MaxBackoff, 60*time.Second, time.Second, 10*time.Minute)

	c.Delivery.DefaultTimeout = clampDuration(c.Delivery.DefaultTimeout, 10*time.Second, time.Second, 60*time.Second)
	c.Retry.DefaultMaxAttempts = clampInt(c.Retry.DefaultMaxAttempts, 3, 0, 10)
}
