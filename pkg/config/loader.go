package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// gatewayFile mirrors gateway.yaml.
type gatewayFile struct {
	Poller    *PollerConfig    `yaml:"poller"`
	Delivery  *DeliveryConfig  `yaml:"delivery"`
	Retry     *RetryConfig     `yaml:"retry"`
	Breaker   *BreakerConfig   `yaml:"breaker"`
	Scheduler *SchedulerConfig `yaml:"scheduler"`
	Sandbox   *SandboxConfig   `yaml:"sandbox"`
	Alerts    *AlertConfig     `yaml:"alerts"`
	Retention *RetentionConfig `yaml:"retention"`
	Shutdown  *ShutdownConfig  `yaml:"shutdown"`
}

// integrationsFile mirrors integrations.yaml.
type integrationsFile struct {
	Integrations []*Integration `yaml:"integrations"`
}

// sourcesFile mirrors sources.yaml.
type sourcesFile struct {
	Sources []*Source `yaml:"sources"`
}

// alertChannelsFile mirrors alert_channels.yaml.
type alertChannelsFile struct {
	AlertChannels []*AlertChannel `yaml:"alert_channels"`
}

// Initialize loads and validates all configuration from configDir.
// Missing optional files fall back to built-in defaults; invalid definitions
// fail the whole load (no partial startup with broken configs).
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		Poller:    DefaultPollerConfig(),
		Delivery:  DefaultDeliveryConfig(),
		Retry:     DefaultRetryConfig(),
		Breaker:   DefaultBreakerConfig(),
		Scheduler: DefaultSchedulerConfig(),
		Sandbox:   DefaultSandboxConfig(),
		Alerts:    DefaultAlertConfig(),
		Retention: DefaultRetentionConfig(),
		Shutdown:  DefaultShutdownConfig(),
	}

	var gw gatewayFile
	if err := loadYAML(filepath.Join(configDir, "gateway.yaml"), &gw, true); err != nil {
		return nil, err
	}
	overlayGateway(cfg, &gw)

	var ints integrationsFile
	if err := loadYAML(filepath.Join(configDir, "integrations.yaml"), &ints, true); err != nil {
		return nil, err
	}
	var srcs sourcesFile
	if err := loadYAML(filepath.Join(configDir, "sources.yaml"), &srcs, true); err != nil {
		return nil, err
	}
	var chans alertChannelsFile
	if err := loadYAML(filepath.Join(configDir, "alert_channels.yaml"), &chans, true); err != nil {
		return nil, err
	}

	if err := validateAll(ints.Integrations, srcs.Sources, chans.AlertChannels); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	cfg.Integrations = NewIntegrationRegistry(ints.Integrations)
	cfg.Sources = NewSourceRegistry(srcs.Sources)
	cfg.AlertChannels = NewAlertChannelRegistry(chans.AlertChannels)

	cfg.applyBounds()

	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"config_dir", configDir,
		"integrations", stats.Integrations,
		"sources", stats.Sources,
		"alert_channels", stats.AlertChannels)

	return cfg, nil
}

// loadYAML reads one YAML file with env expansion. When optional is true a
// missing file is not an error.
func loadYAML(path string, out interface{}, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return NewLoadError(path, fmt.Errorf("%w: %v", ErrConfigNotFound, err))
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, out); err != nil {
		return NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}
	return nil
}

// overlayGateway merges non-nil sections from gateway.yaml over defaults.
func overlayGateway(cfg *Config, gw *gatewayFile) {
	if gw.Poller != nil {
		cfg.Poller = gw.Poller
	}
	if gw.Delivery != nil {
		cfg.Delivery = gw.Delivery
	}
	if gw.Retry != nil {
		cfg.Retry = gw.Retry
	}
	if gw.Breaker != nil {
		cfg.Breaker = gw.Breaker
	}
	if gw.Scheduler != nil {
		cfg.Scheduler = gw.Scheduler
	}
	if gw.Sandbox != nil {
		cfg.Sandbox = gw.Sandbox
	}
	if gw.Alerts != nil {
		cfg.Alerts = gw.Alerts
	}
	if gw.Retention != nil {
		cfg.Retention = gw.Retention
	}
	if gw.Shutdown != nil {
		cfg.Shutdown = gw.Shutdown
	}
}
