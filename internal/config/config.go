package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultLocale   = "en"
	defaultTimezone = "UTC"
)

type Config struct {
	Locale         string        `env:"LOCALE" envDefault:"en"`
	FallbackLocale string        `env:"FALLBACK_LOCALE" envDefault:"en"`
	LocalesDir     string        `env:"LOCALES_DIR"`
	ServiceID      string        `env:"SERVICE_ID"`
	ServiceURL     string        `env:"SERVICE_URL"`
	ServiceToken   string        `env:"SERVICE_TOKEN"`
	ReportQuery    string        `env:"REPORT_QUERY"`
	ReportTop      int           `env:"REPORT_TOP" envDefault:"100"`
	Timezone       string        `env:"TIMEZONE" envDefault:"UTC"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()
	return parse(env.Options{})
}

// FromMap builds a Config from an explicit environment instead of the process one.
func FromMap(environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.trim()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) trim() {
	for _, s := range []*string{
		&c.Locale, &c.FallbackLocale, &c.LocalesDir, &c.ServiceID,
		&c.ServiceURL, &c.ServiceToken, &c.ReportQuery, &c.Timezone,
	} {
		*s = strings.TrimSpace(*s)
	}
}

// validate applies every rule on the loaded configuration.
func (c *Config) validate() error {
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: invalid LOCALE (%q): %w", c.Locale, err)
	}
	if c.FallbackLocale != "" {
		if _, err := language.Parse(c.FallbackLocale); err != nil {
			return fmt.Errorf("config: invalid FALLBACK_LOCALE (%q): %w", c.FallbackLocale, err)
		}
	}

	if c.ServiceID == "" {
		return fmt.Errorf("config: SERVICE_ID is required and cannot be empty")
	}

	if c.ServiceURL == "" {
		return fmt.Errorf("config: SERVICE_URL is required and cannot be empty")
	}
	parsed, err := url.Parse(c.ServiceURL)
	if err != nil {
		return fmt.Errorf("config: invalid SERVICE_URL (%q): %w", c.ServiceURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("config: invalid SERVICE_URL (%q): http(s) scheme or host missing", c.ServiceURL)
	}

	if c.ReportTop < 0 {
		return fmt.Errorf("config: REPORT_TOP must not be negative (%d)", c.ReportTop)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("config: HTTP_TIMEOUT must not be negative (%s)", c.HTTPTimeout)
	}

	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	return nil
}
