package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Notify    NotifyConfig    `yaml:"notify"`
	Report    ReportConfig    `yaml:"report"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
}

// CORSConfig holds CORS settings. List values are comma-separated.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN               string        `yaml:"dsn"                 env:"DATABASE_DSN"                 env-required:"true"`
	MaxConns          int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"25"`
	MinConns          int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-default:"5"`
	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"1m"`
	ApplicationName   string        `yaml:"application_name"    env:"DATABASE_APPLICATION_NAME"    env-default:"worktrack"`
}

// AuthConfig holds bearer token verification settings. Tokens are issued
// by an external identity provider; either a shared HS256 secret or a JWKS
// endpoint must be configured.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWKSURL   string `yaml:"jwks_url"   env:"AUTH_JWKS_URL"`
	Issuer    string `yaml:"issuer"     env:"AUTH_ISSUER"`
	Audience  string `yaml:"audience"   env:"AUTH_AUDIENCE"`
}

// UsesJWKS reports whether tokens are verified against a remote key set.
func (c AuthConfig) UsesJWKS() bool {
	return c.JWKSURL != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds the per-client token bucket settings.
// A zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"   env:"RATE_LIMIT_RPS"   env-default:"20"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"40"`
}

// NotifyConfig holds assignment notification settings.
// An empty WebhookURL disables dispatch.
type NotifyConfig struct {
	WebhookURL  string        `yaml:"webhook_url"  env:"NOTIFY_WEBHOOK_URL"`
	QueueSize   int           `yaml:"queue_size"   env:"NOTIFY_QUEUE_SIZE"   env-default:"256"`
	MaxAttempts int           `yaml:"max_attempts" env:"NOTIFY_MAX_ATTEMPTS" env-default:"3"`
	RetryDelay  time.Duration `yaml:"retry_delay"  env:"NOTIFY_RETRY_DELAY"  env-default:"2s"`
	Timeout     time.Duration `yaml:"timeout"      env:"NOTIFY_TIMEOUT"      env-default:"5s"`
}

// Enabled reports whether notifications are delivered.
func (c NotifyConfig) Enabled() bool {
	return strings.TrimSpace(c.WebhookURL) != ""
}

// ReportConfig holds report defaults.
type ReportConfig struct {
	TeamDefaultDays int    `yaml:"team_default_days" env:"REPORT_TEAM_DEFAULT_DAYS" env-default:"30"`
	Timezone        string `yaml:"timezone"          env:"REPORT_TIMEZONE"          env-default:"UTC"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// CleanupConfig holds settings of the orphan cleanup command.
type CleanupConfig struct {
	OrphanRetentionDays int `yaml:"orphan_retention_days" env:"CLEANUP_ORPHAN_RETENTION_DAYS" env-default:"90"`
}
