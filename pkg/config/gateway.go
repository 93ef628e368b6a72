package config

import (
	"runtime"
	"time"
)

// PollerConfig controls the source poll loops.
type PollerConfig struct {
	// PollInterval is the base interval between source reads. Bounds: 1s–300s.
	PollInterval time.Duration `yaml:"poll_interval"`

	// BatchSize is the max rows fetched per poll. Bounds: 1–100.
	BatchSize int `yaml:"batch_size"`

	// DBTimeout bounds a single source read. Bounds: 1s–120s.
	DBTimeout time.Duration `yaml:"db_timeout"`

	// MaxBackoff caps the transient-error backoff of the poll loop.
	MaxBackoff time.Duration `yaml:"max_backoff"`
}

// DeliveryConfig controls the delivery worker pool and HTTP execution.
type DeliveryConfig struct {
	// WorkerCount is the number of delivery goroutines. Defaults to 2×CPU.
	WorkerCount int `yaml:"worker_count"`

	// DefaultTimeout is the per-request deadline when an integration does
	// not set timeout_ms. Bounds: 1s–60s.
	DefaultTimeout time.Duration `yaml:"default_timeout"`

	// AllowInsecureLocal permits plain HTTP and loopback targets. Never set
	// in production; exists for local development and tests.
	AllowInsecureLocal bool `yaml:"allow_insecure_local"`

	// MaxResponseBytes caps the stored response body snapshot.
	MaxResponseBytes int `yaml:"max_response_bytes"`

	// MaxFetchedBytes caps dataFetched payloads from pull sources.
	MaxFetchedBytes int `yaml:"max_fetched_bytes"`

	// PayloadWarnBytes logs a warning when a transformed payload exceeds it.
	PayloadWarnBytes int `yaml:"payload_warn_bytes"`
}

// RetryConfig controls backoff and the DLQ worker.
type RetryConfig struct {
	// BaseDelay is the backoff base (delay = base * 2^attempt, full jitter).
	BaseDelay time.Duration `yaml:"base_delay"`

	// MaxDelay caps a single backoff delay.
	MaxDelay time.Duration `yaml:"max_delay"`

	// DefaultMaxAttempts applies when an integration does not set
	// retry_count. Bounds: 0–10.
	DefaultMaxAttempts int `yaml:"default_max_attempts"`

	// ScanInterval is how often the DLQ worker scans for due entries.
	ScanInterval time.Duration `yaml:"scan_interval"`

	// ScanBatchSize is the max DLQ entries re-driven per scan.
	ScanBatchSize int `yaml:"scan_batch_size"`

	// StuckThreshold returns entries stranded in RETRYING to the queue after
	// this long (the claiming worker died mid-redelivery). Zero disables the
	// sweep.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`
}

// BreakerConfig controls the per-integration circuit breakers.
type BreakerConfig struct {
	// FailureThreshold is the consecutive-failure count that opens a circuit.
	FailureThreshold int `yaml:"failure_threshold"`

	// Cooldown is how long an open circuit waits before a half-open probe.
	Cooldown time.Duration `yaml:"cooldown"`

	// AutoDisableThreshold deactivates the integration entirely and emits
	// an AUTO_DISABLED alert. Zero disables the policy.
	AutoDisableThreshold int `yaml:"auto_disable_threshold"`
}

// SchedulerConfig controls the scheduling worker.
type SchedulerConfig struct {
	// TickInterval is how often due scheduled entries are scanned.
	TickInterval time.Duration `yaml:"tick_interval"`

	// Skew widens the due window to absorb clock drift between pods.
	Skew time.Duration `yaml:"skew"`

	// LeaseDuration is how long a claimed entry stays leased before another
	// worker may pick it up.
	LeaseDuration time.Duration `yaml:"lease_duration"`

	// OverdueWindow is how far past scheduled_for a pending entry may drift
	// before the janitor relabels it OVERDUE.
	OverdueWindow time.Duration `yaml:"overdue_window"`

	// BatchSize is the max entries dispatched per tick.
	BatchSize int `yaml:"batch_size"`
}

// SandboxConfig bounds untrusted script execution.
type SandboxConfig struct {
	// TransformTimeout caps a transformation script run.
	TransformTimeout time.Duration `yaml:"transform_timeout"`

	// ScheduleTimeout caps a scheduling script run.
	ScheduleTimeout time.Duration `yaml:"schedule_timeout"`
}

// AlertConfig controls failure aggregation and digests.
type AlertConfig struct {
	// Window is the rolling aggregation window per org per integration.
	Window time.Duration `yaml:"window"`

	// Interval is how often windows are evaluated and digests dispatched.
	Interval time.Duration `yaml:"interval"`

	// MinFailures suppresses digests below this failure count.
	MinFailures int `yaml:"min_failures"`

	// DashboardURL is embedded in digests for deep links.
	DashboardURL string `yaml:"dashboard_url"`

	// SampleLimit caps the sample request snippets included per digest.
	SampleLimit int `yaml:"sample_limit"`
}

// RetentionConfig controls the cleanup janitor.
type RetentionConfig struct {
	// LogRetention applies to execution logs and delivery attempts.
	LogRetention time.Duration `yaml:"log_retention"`

	// EventRetention applies to event audit rows (expires_at).
	EventRetention time.Duration `yaml:"event_retention"`

	// DedupRetention applies to the processed-events dedup table.
	DedupRetention time.Duration `yaml:"dedup_retention"`

	// StuckThreshold relabels PROCESSING events STUCK after this long.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`

	// CleanupInterval is how often the janitor runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ShutdownConfig controls graceful drain.
type ShutdownConfig struct {
	// DrainWindow is how long in-flight work may run after a stop signal.
	DrainWindow time.Duration `yaml:"drain_window"`
}

// DefaultPollerConfig returns the built-in poller defaults.
func DefaultPollerConfig() *PollerConfig {
	return &PollerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		DBTimeout:    30 * time.Second,
		MaxBackoff:   60 * time.Second,
	}
}

// DefaultDeliveryConfig returns the built-in delivery defaults.
func DefaultDeliveryConfig() *DeliveryConfig {
	return &DeliveryConfig{
		WorkerCount:      2 * runtime.NumCPU(),
		DefaultTimeout:   10 * time.Second,
		MaxResponseBytes: 100 * 1024,
		MaxFetchedBytes:  50 * 1024,
		PayloadWarnBytes: 1024 * 1024,
	}
}

// DefaultRetryConfig returns the built-in retry defaults.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		BaseDelay:          1 * time.Second,
		MaxDelay:           5 * time.Minute,
		DefaultMaxAttempts: 3,
		ScanInterval:       15 * time.Second,
		ScanBatchSize:      25,
		StuckThreshold:     5 * time.Minute,
	}
}

// DefaultBreakerConfig returns the built-in breaker defaults.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		FailureThreshold:     10,
		Cooldown:             5 * time.Minute,
		AutoDisableThreshold: 50,
	}
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TickInterval:  30 * time.Second,
		Skew:          60 * time.Second,
		LeaseDuration: 5 * time.Minute,
		OverdueWindow: 60 * time.Second,
		BatchSize:     50,
	}
}

// DefaultSandboxConfig returns the built-in sandbox defaults.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		TransformTimeout: 60 * time.Second,
		ScheduleTimeout:  5 * time.Second,
	}
}

// DefaultAlertConfig returns the built-in alerting defaults.
func DefaultAlertConfig() *AlertConfig {
	return &AlertConfig{
		Window:      1 * time.Hour,
		Interval:    5 * time.Minute,
		MinFailures: 1,
		SampleLimit: 3,
	}
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		LogRetention:    90 * 24 * time.Hour,
		EventRetention:  90 * 24 * time.Hour,
		DedupRetention:  6 * time.Hour,
		StuckThreshold:  10 * time.Minute,
		CleanupInterval: 10 * time.Minute,
	}
}

// DefaultShutdownConfig returns the built-in shutdown defaults.
func DefaultShutdownConfig() *ShutdownConfig {
	return &ShutdownConfig{
		DrainWindow: 30 * time.Second,
	}
}
