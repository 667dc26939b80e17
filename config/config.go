// Package config loads process configuration from the environment and an
// optional config file. The Stripe keys are mandatory: the process must not
// serve traffic without them.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultPort         = "4242"
	defaultClientOrigin = "http://localhost:4242"
)

var (
	ErrMissingSecretKey      = errors.New("STRIPE_SECRET_KEY is not set")
	ErrMissingPublishableKey = errors.New("STRIPE_PUBLISHABLE_KEY is not set")
)

// Config holds everything the process needs to run.
type Config struct {
	Port                 string
	StripeSecretKey      string
	StripePublishableKey string

	// ClientOrigin is the origin allowed by CORS and the base for the
	// post-checkout return URL.
	ClientOrigin string

	// GoogleCloudProject enables the Cloud Logging sink when set.
	GoogleCloudProject string

	SentryDSN string
}

// Load reads configuration from the environment, with an optional
// config.yaml next to the binary taking lower precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("CLIENT_ORIGIN", defaultClientOrigin)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Port:                 v.GetString("PORT"),
		StripeSecretKey:      v.GetString("STRIPE_SECRET_KEY"),
		StripePublishableKey: v.GetString("STRIPE_PUBLISHABLE_KEY"),
		ClientOrigin:         v.GetString("CLIENT_ORIGIN"),
		GoogleCloudProject:   v.GetString("GOOGLE_CLOUD_PROJECT"),
		SentryDSN:            v.GetString("SENTRY_DSN"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.StripeSecretKey == "" {
		return ErrMissingSecretKey
	}

	if c.StripePublishableKey == "" {
		return ErrMissingPublishableKey
	}

	return nil
}
