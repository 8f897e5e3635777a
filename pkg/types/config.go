// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"time"
)

// HTTPConfig holds shared HTTP settings used by the transport.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "fred-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FREDConfig holds settings for talking to the FRED API.
type FREDConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the API root; endpoint paths such as "series/search" are
	// resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey is the FRED API key sent as the api_key query parameter.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Pretty switches from JSON lines to the human-readable console writer.
	Pretty bool `json:"pretty" yaml:"pretty" mapstructure:"pretty"`
}

// Config groups all fred-engine settings.
type Config struct {
	FRED FREDConfig `json:"fred" yaml:"fred" mapstructure:"fred"`
	Log  LogConfig  `json:"log" yaml:"log" mapstructure:"log"`
}

// Validate reports the first setting that prevents calling the API.
func (c Config) Validate() error {
	switch {
	case c.FRED.APIKey == "":
		return errors.New("fred api key is not set: use fred.api_key, FRED_ENGINE_FRED_API_KEY, or .secrets/fred-api-key")
	case c.FRED.BaseURL == "":
		return errors.New("fred base url is not set")
	case c.FRED.Timeout <= 0:
		return errors.New("fred timeout must be positive")
	}
	return nil
}

// Redacted returns a copy of c with the API key masked, for display.
func (c Config) Redacted() Config {
	if c.FRED.APIKey != "" {
		c.FRED.APIKey = "********"
	}
	return c
}
