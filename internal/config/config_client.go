package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of StructuredConfig used by the CLI client.
type ClientConfig struct {
	// HTTPAddress is the base address of the portfolio API.
	HTTPAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// Token is an optional bearer token reused across invocations.
	Token string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig loads the merged configuration and maps the fields the
// client needs. Server-only settings are not required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.Adapter.Token,
		LogLevel:       cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
