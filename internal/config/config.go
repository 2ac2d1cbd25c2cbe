// Package config loads the typed configuration of the API and seed commands.
//
// Values come from the process environment, optionally pre-populated from a
// .env file. Every field carries its default in an envDefault tag, so an empty
// environment yields a working in-memory development setup except for
// JWT_SECRET, which must always be provided.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"cahaya-digital/internal/common/pagination"
	"cahaya-digital/internal/handler/http/middleware"
	"cahaya-digital/internal/infra/db"
	"cahaya-digital/internal/infra/seed"
	pkgconfig "cahaya-digital/internal/pkg/config"
	"cahaya-digital/internal/resilience/circuitbreaker"
	"cahaya-digital/pkg/ratelimit"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// MinJWTSecretLength is 256 bits of key material for HS256.
const MinJWTSecretLength = 32

var weakSecrets = []string{"secret", "password", "test", "admin", "default", "changeme"}

// Config is the complete runtime configuration.
type Config struct {
	Version string `env:"APP_VERSION" envDefault:"dev"`

	Server        ServerConfig
	Storage       StorageConfig
	Auth          AuthConfig
	Seed          seed.Config
	SeedOnStart   bool `env:"SEED_ON_START" envDefault:"true"`
	CORS          middleware.CORSConfig
	Security      middleware.SecurityConfig
	RateLimit     RateLimitConfig
	Pagination    pagination.Config
	Feed          FeedConfig
	Observability ObservabilityConfig
}

// FeedConfig configures GET /rss.xml.
type FeedConfig struct {
	// SiteURL is the public address used in feed links; derived from the request when empty.
	SiteURL   string `env:"SITE_URL"`
	ItemLimit int    `env:"FEED_ITEM_LIMIT" envDefault:"20"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr              string        `env:"SERVER_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" envDefault:"10s"`
	ReadTimeout       time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// MaxBodyBytes caps request bodies; article HTML is the largest payload.
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES" envDefault:"1048576"`
}

// StorageConfig selects and tunes the storage backend.
type StorageConfig struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"cahaya.db"`

	Pool db.ConnectionConfig

	BreakerEnabled bool `env:"BREAKER_ENABLED" envDefault:"true"`
	Breaker        circuitbreaker.Config
}

// AuthConfig configures password hashing and login tokens.
type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"JWT_TTL" envDefault:"24h"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"cahaya-digital"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"12"`
}

// RateLimitConfig configures the per-IP limits on the public write endpoints.
type RateLimitConfig struct {
	LoginRate  int           `env:"RATELIMIT_LOGIN_RATE" envDefault:"5"`
	LoginPer   time.Duration `env:"RATELIMIT_LOGIN_PER" envDefault:"1m"`
	LoginBurst int           `env:"RATELIMIT_LOGIN_BURST" envDefault:"5"`

	SubscribeRate  int           `env:"RATELIMIT_SUBSCRIBE_RATE" envDefault:"10"`
	SubscribePer   time.Duration `env:"RATELIMIT_SUBSCRIBE_PER" envDefault:"1h"`
	SubscribeBurst int           `env:"RATELIMIT_SUBSCRIBE_BURST" envDefault:"3"`

	MaxKeys         int           `env:"RATELIMIT_MAX_KEYS" envDefault:"10000"`
	CleanupInterval time.Duration `env:"RATELIMIT_CLEANUP_INTERVAL" envDefault:"5m"`

	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is honoured.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Login returns the limiter configuration for POST /api/auth/login.
func (c RateLimitConfig) Login() ratelimit.Config {
	return ratelimit.Config{Rate: c.LoginRate, Per: c.LoginPer, Burst: c.LoginBurst, MaxKeys: c.MaxKeys}
}

// Subscribe returns the limiter configuration for POST /api/subscribers.
func (c RateLimitConfig) Subscribe() ratelimit.Config {
	return ratelimit.Config{Rate: c.SubscribeRate, Per: c.SubscribePer, Burst: c.SubscribeBurst, MaxKeys: c.MaxKeys}
}

// ObservabilityConfig configures metrics refresh and trace sampling.
type ObservabilityConfig struct {
	MetricsRefreshSchedule string  `env:"METRICS_REFRESH_SCHEDULE" envDefault:"@every 1m"`
	TraceSampleRatio       float64 `env:"TRACE_SAMPLE_RATIO" envDefault:"1.0"`
}

// Load reads the optional .env files (".env" when none are given) and parses
// the environment into a validated Config. Variables already set in the
// environment win over .env values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Storage.Breaker.Name = "storage"
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	add("SERVER_ADDR", nonEmpty(c.Server.Addr))
	add("SERVER_READ_HEADER_TIMEOUT", pkgconfig.Positive(c.Server.ReadHeaderTimeout))
	add("SERVER_READ_TIMEOUT", pkgconfig.Positive(c.Server.ReadTimeout))
	add("SERVER_WRITE_TIMEOUT", pkgconfig.Positive(c.Server.WriteTimeout))
	add("SERVER_IDLE_TIMEOUT", pkgconfig.Positive(c.Server.IdleTimeout))
	add("SERVER_SHUTDOWN_TIMEOUT", pkgconfig.InRange(c.Server.ShutdownTimeout, time.Second, 5*time.Minute))
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("SERVER_MAX_BODY_BYTES: must be positive, got %d", c.Server.MaxBodyBytes))
	}

	add("STORAGE_DRIVER", c.Storage.validate())
	add("JWT_SECRET", ValidateJWTSecret(c.Auth.JWTSecret))
	add("JWT_TTL", pkgconfig.InRange(c.Auth.TokenTTL, time.Minute, 30*24*time.Hour))
	add("BCRYPT_COST", pkgconfig.InRange(c.Auth.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))

	add("CORS", c.CORS.Validate())

	add("RATELIMIT_LOGIN", c.RateLimit.Login().Validate())
	add("RATELIMIT_SUBSCRIBE", c.RateLimit.Subscribe().Validate())
	add("RATELIMIT_CLEANUP_INTERVAL", pkgconfig.Positive(c.RateLimit.CleanupInterval))
	if _, err := middleware.ParseTrustedProxies(c.RateLimit.TrustedProxies); err != nil {
		add("TRUSTED_PROXIES", err)
	}

	add("PAGINATION_MAX_LIMIT", pkgconfig.InRange(c.Pagination.MaxLimit, 1, 1000))
	add("PAGINATION_DEFAULT_LIMIT", pkgconfig.InRange(c.Pagination.DefaultLimit, 1, max(c.Pagination.MaxLimit, 1)))

	add("FEED_ITEM_LIMIT", pkgconfig.InRange(c.Feed.ItemLimit, 1, 100))

	add("METRICS_REFRESH_SCHEDULE", pkgconfig.ValidateCronSchedule(c.Observability.MetricsRefreshSchedule))
	if r := c.Observability.TraceSampleRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("TRACE_SAMPLE_RATIO: must be within [0, 1], got %v", r))
	}

	return errors.Join(errs...)
}

func (s StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres:
		if s.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	case DriverSQLite:
		if s.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s)", s.Driver,
			strings.Join([]string{DriverMemory, DriverPostgres, DriverSQLite}, ", "))
	}
	if err := pkgconfig.Positive(s.Breaker.Timeout); s.BreakerEnabled && err != nil {
		return fmt.Errorf("BREAKER_TIMEOUT: %w", err)
	}
	return nil
}

// ValidateJWTSecret requires at least MinJWTSecretLength characters and
// rejects common placeholder values.
func ValidateJWTSecret(secret string) error {
	if secret == "" {
		return errors.New("must be set")
	}
	if len(secret) < MinJWTSecretLength {
		return fmt.Errorf("must be at least %d characters (256 bits)", MinJWTSecretLength)
	}
	if isWeakSecret(strings.ToLower(secret)) {
		return errors.New("must not be a common weak value")
	}
	return nil
}

// isWeakSecret catches padded placeholders: one repeated character, or a weak
// word repeated to length with optional trailing digits ("secretsecret...123").
func isWeakSecret(s string) bool {
	if strings.Count(s, s[:1]) == len(s) {
		return true
	}
	s = strings.TrimRight(s, "0123456789")
	return slices.ContainsFunc(weakSecrets, func(w string) bool {
		return s != "" && strings.ReplaceAll(s, w, "") == ""
	})
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}
