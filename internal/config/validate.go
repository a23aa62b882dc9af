package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const minSecretLength = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("rate_limit.rps must be >= 0 (got %v)", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be >= 1 when rate limiting is on (got %d)", c.RateLimit.Burst)
	}

	if err := c.Notify.validate(); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if c.Cleanup.OrphanRetentionDays < 1 {
		return fmt.Errorf("cleanup.orphan_retention_days must be >= 1 (got %d)", c.Cleanup.OrphanRetentionDays)
	}

	return nil
}

func (a AuthConfig) validate() error {
	if a.UsesJWKS() {
		if err := requireAbsoluteURL(a.JWKSURL); err != nil {
			return fmt.Errorf("jwks_url: %w", err)
		}
		return nil
	}
	if len(a.JWTSecret) < minSecretLength {
		return fmt.Errorf("jwt_secret must be at least %d characters when jwks_url is not set (got %d)",
			minSecretLength, len(a.JWTSecret))
	}
	return nil
}

func (n NotifyConfig) validate() error {
	if !n.Enabled() {
		return nil
	}
	if err := requireAbsoluteURL(n.WebhookURL); err != nil {
		return fmt.Errorf("webhook_url: %w", err)
	}
	if n.QueueSize < 1 {
		return fmt.Errorf("queue_size must be >= 1 (got %d)", n.QueueSize)
	}
	if n.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", n.MaxAttempts)
	}
	if n.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", n.Timeout)
	}
	return nil
}

func (r *ReportConfig) validate() error {
	if r.TeamDefaultDays < 1 {
		return fmt.Errorf("team_default_days must be >= 1 (got %d)", r.TeamDefaultDays)
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	r.Location = loc
	return nil
}

func requireAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
