// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves fred-engine settings from defaults, a yaml file,
// FRED_ENGINE_* environment variables, and the secrets directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fred-engine/internal/secrets"
	"github.com/pdiddy/fred-engine/pkg/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g. FRED_ENGINE_FRED_API_KEY.
	EnvPrefix = "FRED_ENGINE"

	DefaultBaseURL = "https://api.stlouisfed.org/fred"
	DefaultTimeout = 30 * time.Second

	configName = "fred-engine"
)

// New returns a viper instance with defaults and environment binding set.
// Every key has a default so that environment variables reach Unmarshal.
func New(version string) *viper.Viper {
	v := viper.New()
	v.SetDefault("fred.base_url", DefaultBaseURL)
	v.SetDefault("fred.api_key", "")
	v.SetDefault("fred.timeout", DefaultTimeout)
	v.SetDefault("fred.user_agent", "fred-engine/"+version)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path, or when path is empty searches ./fred-engine.yaml and
// ~/.config/fred-engine/config.yaml. It returns the file used, or "" when no
// file was found in the search locations.
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("reading config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes the resolved settings. An empty API key falls back to the
// fred-api-key secret.
func Load(v *viper.Viper, s secrets.Store) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.FRED.APIKey == "" {
		cfg.FRED.APIKey = s.Get(secrets.FREDAPIKey)
	}
	return cfg, nil
}

// Render returns cfg as yaml with the API key masked.
func Render(cfg types.Config) (string, error) {
	out, err := yaml.Marshal(cfg.Redacted())
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(out), nil
}
