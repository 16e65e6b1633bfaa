package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/simplexservers/mojangapi"
)

var ErrInvalidValue = errors.New("invalid value")

type Config struct {
	sentryDSN string
	timeout   time.Duration
	userAgent string
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) Timeout() time.Duration {
	return c.timeout
}

func (c *Config) UserAgent() string {
	return c.userAgent
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{timeout: %s, ...}", c.timeout)
}

// FromEnv reads configuration from MOJANGAPI_* environment variables.
// Every value is optional.
func FromEnv() (Config, error) {
	timeout := mojangapi.DefaultTimeout
	if rawTimeout, ok := os.LookupEnv("MOJANGAPI_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(rawTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("%w: MOJANGAPI_TIMEOUT: %s", ErrInvalidValue, rawTimeout)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("%w: MOJANGAPI_TIMEOUT must be positive: %s", ErrInvalidValue, rawTimeout)
		}
		timeout = parsed
	}

	return Config{
		sentryDSN: os.Getenv("MOJANGAPI_SENTRY_DSN"),
		timeout:   timeout,
		userAgent: os.Getenv("MOJANGAPI_USER_AGENT"),
	}, nil
}
