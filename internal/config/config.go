// Package config loads runtime configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for the bot.
type Config struct {
	TelegramToken   string
	Port            int
	LogLevel        string
	QuoteTTL        time.Duration
	AlertInterval   time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// fileConfig mirrors Config for YAML decoding. Durations are strings
// in time.ParseDuration format.
type fileConfig struct {
	TelegramToken   string `yaml:"telegram_token"`
	Port            int    `yaml:"port"`
	LogLevel        string `yaml:"log_level"`
	QuoteTTL        string `yaml:"quote_ttl"`
	AlertInterval   string `yaml:"alert_interval"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	IdleTimeout     string `yaml:"idle_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// Load builds configuration in three layers: defaults, then the YAML
// file at path (skipped when path is empty or the file is absent),
// then environment variables. It returns an error for any invalid or
// missing required value.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:            8080,
		LogLevel:        "info",
		QuoteTTL:        30 * time.Second,
		AlertInterval:   time.Minute,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}

	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.TelegramToken == "" {
		return nil, errors.New("TELEGRAM_API_TOKEN is required")
	}
	if !isValidLogLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", cfg.LogLevel)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}
	if cfg.QuoteTTL <= 0 {
		return nil, fmt.Errorf("invalid QUOTE_TTL: %s, must be positive", cfg.QuoteTTL)
	}
	if cfg.AlertInterval <= 0 {
		return nil, fmt.Errorf("invalid ALERT_INTERVAL: %s, must be positive", cfg.AlertInterval)
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fc.TelegramToken != "" {
		cfg.TelegramToken = fc.TelegramToken
	}
	if fc.Port != 0 {
		cfg.Port = fc.Port
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}

	durations := []struct {
		raw  string
		key  string
		dest *time.Duration
	}{
		{fc.QuoteTTL, "quote_ttl", &cfg.QuoteTTL},
		{fc.AlertInterval, "alert_interval", &cfg.AlertInterval},
		{fc.ReadTimeout, "read_timeout", &cfg.ReadTimeout},
		{fc.WriteTimeout, "write_timeout", &cfg.WriteTimeout},
		{fc.IdleTimeout, "idle_timeout", &cfg.IdleTimeout},
		{fc.ShutdownTimeout, "shutdown_timeout", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("invalid %s in config file: %w", d.key, err)
		}
		*d.dest = v
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TELEGRAM_API_TOKEN"); v != "" {
		cfg.TelegramToken = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	port, err := getInt("PORT", cfg.Port)
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = port

	durations := []struct {
		key  string
		dest *time.Duration
	}{
		{"QUOTE_TTL", &cfg.QuoteTTL},
		{"ALERT_INTERVAL", &cfg.AlertInterval},
		{"READ_TIMEOUT", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"IDLE_TIMEOUT", &cfg.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v, err := getDuration(d.key, *d.dest)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dest = v
	}
	return nil
}

func getInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(v)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
