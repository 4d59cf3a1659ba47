// Package config loads client configuration from environment variables.
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultServerURL = "http://localhost:8080"

// Config controls how the auth client reaches the relying party.
type Config struct {
	// ServerURL is the base URL of the relying-party HTTP API.
	ServerURL string `env:"RETROBOARD_SERVER_URL" envDefault:"http://localhost:8080"`
	// RequestTimeout bounds each HTTP request; the WebAuthn ceremony itself
	// is bounded by the platform authenticator, not by this layer.
	RequestTimeout time.Duration `env:"RETROBOARD_REQUEST_TIMEOUT" envDefault:"30s"`
	// AuthProviders lists the OAuth providers offered for sign-in.
	AuthProviders []string `env:"RETROBOARD_AUTH_PROVIDERS" envSeparator:"," envDefault:"google,github,microsoft"`
}

// LoadFromEnv returns client configuration with defaults.
func LoadFromEnv() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{
			ServerURL:      defaultServerURL,
			RequestTimeout: 30 * time.Second,
			AuthProviders:  []string{"google", "github", "microsoft"},
		}
	}
	if strings.TrimSpace(cfg.ServerURL) == "" {
		cfg.ServerURL = defaultServerURL
	}
	return cfg
}

// ProviderEnabled reports whether an OAuth provider is offered.
func (c Config) ProviderEnabled(name string) bool {
	for _, provider := range c.AuthProviders {
		if strings.EqualFold(strings.TrimSpace(provider), name) {
			return true
		}
	}
	return false
}
