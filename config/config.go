package config

import (
	"errors"
	"strings"

	env "github.com/caarlos0/env/v11"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: role membership, shared login secret and session settings
//   - database.go: analytics database, Redis and cache configuration
//   - http.go: HTTP server configuration
//   - dashboard.go: dashboard tuning
//   - observability.go: metrics
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, insecure defaults).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// NodeEnv is only consulted as a fallback for IsDev.
	NodeEnv string `env:"NODE_ENV"`

	// Authentication configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
	Cache    CacheConfig

	// HTTP server configuration
	HTTP HTTPConfig

	Dashboard DashboardConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Parse loads AppConfig from the process environment. When environ is non-nil it
// is used instead of the process environment, which keeps tests hermetic.
//
// Absent required keys are reported together as a *MissingConfigError.
func Parse(environ map[string]string) (AppConfig, error) {
	var cfg AppConfig
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		if keys := MissingKeys(err); len(keys) > 0 {
			return cfg, &MissingConfigError{Keys: keys, Cause: err}
		}
		return cfg, err
	}
	return cfg, nil
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.HTTP.Sanitize()
	c.Cache.Sanitize()
	c.Dashboard.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// Validate reports configuration that parsed cleanly but cannot run.
func (c *AppConfig) Validate() error {
	var errs []error
	if err := c.Auth.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Auth.SessionStore == SessionStoreMemory && !c.IsDev {
		errs = append(errs, errors.New("SESSION_STORE=memory is only allowed in development mode"))
	}
	return errors.Join(errs...)
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(strings.TrimSpace(c.NodeEnv))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
