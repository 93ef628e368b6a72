package database

import (
	"context"
	"time"
)

// HealthStatus reports database reachability for the health endpoint.
type HealthStatus struct {
	Reachable bool   `json:"reachable"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Health pings the database with a short deadline.
func (c *Client) Health(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.db.PingContext(ctx)
	status := HealthStatus{
		Reachable: err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		status.Error = err.Error()
	}
	return status
}
