package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: remote content API configuration
//   - http.go: HTTP server configuration
//   - session.go: session store and Redis configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template hot reloading,
	// in-memory session fallback). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Remote content API configuration
	API ContentAPIConfig `envPrefix:"API_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Session configuration
	Session SessionConfig `envPrefix:"SESSION_"`

	// Redis configuration (session store + category cache)
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Session.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and APP_ENV environment variables.
// APP_ENV is checked as a fallback for deployments that only set one knob.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}
