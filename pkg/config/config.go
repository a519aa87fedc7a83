package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	JWT           JWTConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	Seed          SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LEDGERLINE_APP_ENV" default:"dev"`
	Port         string `envconfig:"LEDGERLINE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"LEDGERLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LEDGERLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"LEDGERLINE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LEDGERLINE_JWT_ISSUER" default:"ledgerline"`
	ExpirationMinutes int    `envconfig:"LEDGERLINE_JWT_EXPIRATION_MINUTES" default:"60"`
}

// AccessTokenTTL returns the access token TTL configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	RequestsPerMinute int `envconfig:"LEDGERLINE_AUTH_RATE_LIMIT_PER_MINUTE" default:"10"`
	Burst             int `envconfig:"LEDGERLINE_AUTH_RATE_LIMIT_BURST" default:"5"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"LEDGERLINE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type SeedConfig struct {
	DemoData bool `envconfig:"LEDGERLINE_SEED_DEMO_DATA" default:"true"`
}
