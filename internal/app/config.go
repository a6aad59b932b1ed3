package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

const defaultAddr = "0.0.0.0:8080"

// Config holds the complete application configuration, loadable from
// environment variables (SATDESK_ prefix), flags, or YAML config files.
type Config struct {
	Addr              string        `default:"0.0.0.0:8080" usage:"HTTP listen address"`
	DatabaseURL       string        `usage:"PostgreSQL connection URL; empty keeps orders in memory" flag:"database-url"`
	WebhookSecret     string        `usage:"Shared secret for webhook signatures (SATDESK_WEBHOOK_SECRET or WEBHOOK_SECRET)" flag:"webhook-secret"`
	ReplayWindow      time.Duration `default:"300s" usage:"Maximum webhook timestamp skew" flag:"replay-window"`
	MaxBodyBytes      int64         `default:"1048576" usage:"Maximum webhook body size in bytes" flag:"max-body-bytes"`
	OperatorJWTSecret string        `usage:"HMAC secret for operator tokens; empty leaves operator endpoints open" env:"OPERATOR_JWT_SECRET" flag:"operator-jwt-secret"`
	RateLimit         RateLimitConfig
	CORS              CORSConfig
	Graceful          GracefulConfig
}

// RateLimitConfig controls the per-client token bucket limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config files,
// and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{
		EnvPrefix: "SATDESK",
		Files:     []string{"config.yaml", "/etc/satdesk/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(ac aconfig.Config) (*Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, ac).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ReplayWindow <= 0 {
		return errors.Errorf("replay window must be positive, got %s", c.ReplayWindow)
	}
	if c.MaxBodyBytes <= 0 {
		return errors.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("rate limit max and window must be positive")
	}
	return nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like DATABASE_URL and PORT, and the
// sender-side WEBHOOK_SECRET name, to the SATDESK_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.WebhookSecret == "" {
		c.WebhookSecret = os.Getenv("WEBHOOK_SECRET")
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = "0.0.0.0:" + port
	}
}
