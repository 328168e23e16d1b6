package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultJWTSecret is the fallback signing secret used when JWT_SECRET is unset.
// It is publicly known; deployments must override it.
const DefaultJWTSecret = "hohoh"

type Config struct {
	Port string
	Env  string

	StoreDriver  string
	SupabaseURL  string
	SupabaseKey  string
	DatabaseDSN  string
	StoreTimeout time.Duration
	AutoMigrate  bool

	JWTSecret    string
	AuthRequired bool

	LoginRateLimit float64
	LoginRateBurst int
}

// SecretIsDefault reports whether the weak fallback secret is in use.
func (c Config) SecretIsDefault() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// fileConfig mirrors Config for the optional YAML file named by CONFIG_FILE.
// Every field is a string so values read like their environment counterparts.
type fileConfig struct {
	Port           string `yaml:"port"`
	Env            string `yaml:"env"`
	StoreDriver    string `yaml:"store_driver"`
	SupabaseURL    string `yaml:"supabase_url"`
	SupabaseKey    string `yaml:"supabase_key"`
	DatabaseDSN    string `yaml:"database_dsn"`
	StoreTimeout   string `yaml:"store_timeout"`
	AutoMigrate    string `yaml:"auto_migrate"`
	JWTSecret      string `yaml:"jwt_secret"`
	AuthRequired   string `yaml:"auth_required"`
	LoginRateLimit string `yaml:"login_rate_limit"`
	LoginRateBurst string `yaml:"login_rate_burst"`
}

// Load reads configuration from the environment. Values from the YAML file
// named by CONFIG_FILE act as defaults that environment variables override.
func Load() (Config, error) {
	var file fileConfig
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	var err error
	cfg := Config{
		Port:        getEnv("PORT", or(file.Port, "3000")),
		Env:         getEnv("ENV", or(file.Env, "development")),
		StoreDriver: getEnv("STORE_DRIVER", or(file.StoreDriver, "supabase")),
		SupabaseURL: getEnv("SUPABASE_URL", file.SupabaseURL),
		SupabaseKey: getEnv("SUPABASE_KEY", file.SupabaseKey),
		DatabaseDSN: getEnv("DATABASE_DSN", file.DatabaseDSN),
		JWTSecret:   getEnv("JWT_SECRET", or(file.JWTSecret, DefaultJWTSecret)),
	}

	if cfg.StoreTimeout, err = time.ParseDuration(getEnv("STORE_TIMEOUT", or(file.StoreTimeout, "10s"))); err != nil {
		return Config{}, fmt.Errorf("STORE_TIMEOUT: %w", err)
	}
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("AUTO_MIGRATE", or(file.AutoMigrate, "false"))); err != nil {
		return Config{}, fmt.Errorf("AUTO_MIGRATE: %w", err)
	}
	if cfg.AuthRequired, err = strconv.ParseBool(getEnv("AUTH_REQUIRED", or(file.AuthRequired, "false"))); err != nil {
		return Config{}, fmt.Errorf("AUTH_REQUIRED: %w", err)
	}
	if cfg.LoginRateLimit, err = strconv.ParseFloat(getEnv("LOGIN_RATE_LIMIT", or(file.LoginRateLimit, "5")), 64); err != nil {
		return Config{}, fmt.Errorf("LOGIN_RATE_LIMIT: %w", err)
	}
	if cfg.LoginRateBurst, err = strconv.Atoi(getEnv("LOGIN_RATE_BURST", or(file.LoginRateBurst, "10"))); err != nil {
		return Config{}, fmt.Errorf("LOGIN_RATE_BURST: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case "supabase":
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return errors.New("SUPABASE_URL and SUPABASE_KEY must be set for the supabase store")
		}
	case "postgres", "mysql", "sqlite":
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN must be set for the %s store", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	if c.StoreTimeout <= 0 {
		return errors.New("STORE_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
