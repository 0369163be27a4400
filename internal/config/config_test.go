package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_API_TOKEN", "PORT", "LOG_LEVEL", "QUOTE_TTL",
		"ALERT_INTERVAL", "READ_TIMEOUT", "WRITE_TIMEOUT",
		"IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_API_TOKEN", "test-token")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TelegramToken != "test-token" {
		t.Errorf("TelegramToken = %q, want %q", cfg.TelegramToken, "test-token")
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.QuoteTTL != 30*time.Second {
		t.Errorf("QuoteTTL = %v, want 30s", cfg.QuoteTTL)
	}
	if cfg.AlertInterval != time.Minute {
		t.Errorf("AlertInterval = %v, want 1m", cfg.AlertInterval)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 10*time.Second {
		t.Errorf("WriteTimeout = %v, want 10s", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout != 60*time.Second {
		t.Errorf("IdleTimeout = %v, want 60s", cfg.IdleTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_API_TOKEN", "test-token")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("QUOTE_TTL", "5s")
	t.Setenv("ALERT_INTERVAL", "30s")
	t.Setenv("SHUTDOWN_TIMEOUT", "15s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.QuoteTTL != 5*time.Second {
		t.Errorf("QuoteTTL = %v, want 5s", cfg.QuoteTTL)
	}
	if cfg.AlertInterval != 30*time.Second {
		t.Errorf("AlertInterval = %v, want 30s", cfg.AlertInterval)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", cfg.ShutdownTimeout)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `telegram_token: file-token
port: 9000
log_level: warn
quote_ttl: 45s
alert_interval: 2m
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	// Env wins over file.
	t.Setenv("PORT", "9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TelegramToken != "file-token" {
		t.Errorf("TelegramToken = %q, want %q", cfg.TelegramToken, "file-token")
	}
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999 (env should override file)", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.QuoteTTL != 45*time.Second {
		t.Errorf("QuoteTTL = %v, want 45s", cfg.QuoteTTL)
	}
	if cfg.AlertInterval != 2*time.Minute {
		t.Errorf("AlertInterval = %v, want 2m", cfg.AlertInterval)
	}
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_API_TOKEN", "test-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantSub string
	}{
		{
			name:    "missing token",
			env:     map[string]string{},
			wantSub: "TELEGRAM_API_TOKEN",
		},
		{
			name:    "bad port",
			env:     map[string]string{"TELEGRAM_API_TOKEN": "t", "PORT": "nope"},
			wantSub: "PORT",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"TELEGRAM_API_TOKEN": "t", "PORT": "70000"},
			wantSub: "PORT",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"TELEGRAM_API_TOKEN": "t", "LOG_LEVEL": "verbose"},
			wantSub: "LOG_LEVEL",
		},
		{
			name:    "bad quote ttl",
			env:     map[string]string{"TELEGRAM_API_TOKEN": "t", "QUOTE_TTL": "soon"},
			wantSub: "QUOTE_TTL",
		},
		{
			name:    "negative alert interval",
			env:     map[string]string{"TELEGRAM_API_TOKEN": "t", "ALERT_INTERVAL": "-1m"},
			wantSub: "ALERT_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("expected %q in error, got %v", tt.wantSub, err)
			}
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_API_TOKEN", "t")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [not a number"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}
