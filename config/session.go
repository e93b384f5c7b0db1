package config

import "time"

// SessionConfig contains session lifecycle configuration.
type SessionConfig struct {
	// TTL is how long a session lives after login.
	TTL time.Duration `env:"TTL" envDefault:"24h"`

	// Store selects the session store backend: "redis" or "memory".
	// Memory is intended for development and tests only.
	Store string `env:"STORE" envDefault:"redis"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
	switch s.Store {
	case "redis", "memory":
	default:
		s.Store = "redis"
	}
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
