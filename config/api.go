package config

import (
	"strings"
	"time"
)

// ContentAPIConfig contains configuration for the remote journal API that
// owns all article, category, and account data.
type ContentAPIConfig struct {
	// BaseURL is the root of the remote API, without a trailing slash.
	BaseURL string `env:"BASE_URL" envDefault:"https://test-fe.mysellerpintar.com"`

	// Timeout bounds every request to the remote API. There are no retries;
	// a failed request surfaces as a single user-visible error.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// CategoryTTL is how long the category list is cached. Categories are
	// assumed stable for a browsing session.
	CategoryTTL time.Duration `env:"CATEGORY_TTL" envDefault:"5m"`
}

// Sanitize applies guardrails to content API configuration values.
func (a *ContentAPIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
	if a.CategoryTTL <= 0 {
		a.CategoryTTL = 5 * time.Minute
	}
}
