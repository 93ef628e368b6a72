package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the gateway.
type Config struct {
	configDir string

	Poller    *PollerConfig
	Delivery  *DeliveryConfig
	Retry     *RetryConfig
	Breaker   *BreakerConfig
	Scheduler *SchedulerConfig
	Sandbox   *SandboxConfig
	Alerts    *AlertConfig
	Retention *RetentionConfig
	Shutdown  *ShutdownConfig

	Integrations  *IntegrationRegistry
	Sources       *SourceRegistry
	AlertChannels *AlertChannelRegistry
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Integrations  int
	Sources       int
	AlertChannels int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Integrations != nil {
		s.Integrations = c.Integrations.Len()
	}
	if c.Sources != nil {
		s.Sources = c.Sources.Len()
	}
	if c.AlertChannels != nil {
		s.AlertChannels = c.AlertChannels.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetIntegration retrieves an integration by ID.
func (c *Config) GetIntegration(id string) (*Integration, error) {
	return c.Integrations.Get(id)
}

// GetSource retrieves an event source by ID.
func (c *Config) GetSource(id string) (*Source, error) {
	return c.Sources.Get(id)
}
