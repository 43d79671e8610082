// Package config holds crawl configuration and per-site profiles.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config describes one crawl run.
type Config struct {
	// StartURL is the crawl root; every crawled page shares its host.
	StartURL string `mapstructure:"start_url" validate:"required,http_url"`

	// Output is the consolidated markdown file path, truncated at start.
	Output string `mapstructure:"output" validate:"required"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`

	// Delay is the optional pacing between requests; zero disables it.
	Delay time.Duration `mapstructure:"delay" validate:"min=0"`

	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" validate:"required"`

	// Profiles is an optional path to a site-profile YAML file.
	Profiles string `mapstructure:"profiles"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		StartURL:  "https://docs.docsnap.dev/",
		Output:    "docs.md",
		Timeout:   20 * time.Second,
		Delay:     0,
		UserAgent: "docsnap/1.0 (+https://github.com/docsnap/docsnap)",
	}
}

var validate = validator.New()

// Validate checks the configuration before any network activity. A start
// URL without an http or https scheme is a fatal configuration error.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid configuration: field %s failed %q check", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
