// Package config resolves runtime settings from defaults, environment
// variables and command line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tgienger/focus/internal/db"
)

// Supported key-value backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

var (
	ErrInvalidBackend   = errors.New("invalid backend")
	ErrMissingDBPath    = errors.New("sqlite backend needs a database path")
	ErrMissingRedisAddr = errors.New("redis backend needs an address")
)

// Config holds all configuration options for the application
type Config struct {
	Backend     string `env:"FOCUS_BACKEND"`
	DBPath      string `env:"FOCUS_DB_PATH"`
	RedisAddr   string `env:"FOCUS_REDIS_ADDR"`
	RedisPrefix string `env:"FOCUS_REDIS_PREFIX"`
	LogFile     string `env:"FOCUS_LOG_FILE"`
	Debug       bool   `env:"FOCUS_DEBUG"`
	Dark        bool   `env:"FOCUS_DARK"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	path, err := db.DefaultPath()
	if err != nil {
		path = "focus.db"
	}
	return &Config{
		Backend:     BackendSQLite,
		DBPath:      path,
		RedisAddr:   "localhost:6379",
		RedisPrefix: "focus:",
	}
}

// Load returns the defaults overridden by environment variables
func Load() (*Config, error) {
	cfg := Default()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnvironment overrides fields whose environment variable is set
func (c *Config) LoadFromEnvironment() error {
	if v := os.Getenv("FOCUS_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("FOCUS_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("FOCUS_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v, ok := os.LookupEnv("FOCUS_REDIS_PREFIX"); ok {
		c.RedisPrefix = v
	}
	if v := os.Getenv("FOCUS_LOG_FILE"); v != "" {
		c.LogFile = v
	}

	var err error
	if c.Debug, err = envBool("FOCUS_DEBUG", c.Debug); err != nil {
		return err
	}
	if c.Dark, err = envBool("FOCUS_DARK", c.Dark); err != nil {
		return err
	}
	return nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			return ErrMissingDBPath
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return ErrMissingRedisAddr
		}
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidBackend, c.Backend, BackendSQLite, BackendRedis)
	}
	return nil
}

func envBool(name string, fallback bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return b, nil
}
