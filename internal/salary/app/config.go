package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "SALARY_"

// Token store drivers.
const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"
)

type Config struct {
	Env                 string        `koanf:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        `koanf:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        `koanf:"log_format"`            // Log format (json, text) (default: json)
	Port                int           `koanf:"port"`                  // HTTP server port (default: 8000)
	ShutdownGracePeriod time.Duration `koanf:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)

	UsersFile     string        `koanf:"users_file"`     // User source CSV (default: users.csv)
	TokensFile    string        `koanf:"tokens_file"`    // Token source CSV for the csv driver (default: tokens.csv)
	TokenDriver   string        `koanf:"token_driver"`   // Token store driver (csv, sqlite) (default: csv)
	TokenDatabase string        `koanf:"token_database"` // SQLite file for the sqlite driver (default: tokens.db)
	TokenTTL      time.Duration `koanf:"token_ttl"`      // Token freshness window (default: 24h)
	TokenSecret   string        `koanf:"token_secret"`   // Suffix appended when deriving tokens (default: 111)

	RateLimit         bool `koanf:"rate_limit"`          // Per-IP rate limiting on the gateway (default: true)
	TrustProxyHeaders bool `koanf:"trust_proxy_headers"` // Key rate limits on X-Forwarded-For/X-Real-IP (default: false)
}

func defaults() map[string]any {
	return map[string]any{
		"env":                   "dev",
		"log_level":             "info",
		"log_format":            "json",
		"port":                  8000,
		"shutdown_grace_period": "10s",
		"users_file":            "users.csv",
		"tokens_file":           "tokens.csv",
		"token_driver":          DriverCSV,
		"token_database":        "tokens.db",
		"token_ttl":             "24h",
		"token_secret":          "111",
		"rate_limit":            true,
		"trust_proxy_headers":   false,
	}
}

// mapProvider is a koanf provider over an in-memory map.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("map provider does not support ReadBytes")
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}

// LoadConfig layers defaults, the optional YAML file at path and SALARY_*
// environment variables, later sources winning. SALARY_USERS_FILE maps to
// users_file.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envTransformer := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformer), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.TokenDriver {
	case DriverCSV:
		if c.TokensFile == "" {
			return errors.New("config: tokens_file is required by the csv driver")
		}
	case DriverSQLite:
		if c.TokenDatabase == "" {
			return errors.New("config: token_database is required by the sqlite driver")
		}
	default:
		return fmt.Errorf("config: unknown token_driver %q", c.TokenDriver)
	}

	switch {
	case c.UsersFile == "":
		return errors.New("config: users_file is required")
	case c.TokenTTL <= 0:
		return fmt.Errorf("config: token_ttl must be positive, got %s", c.TokenTTL)
	case c.TokenSecret == "":
		return errors.New("config: token_secret is required")
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	return nil
}
