// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
	if cfg.Security.AuthMode != "session" {
		t.Errorf("default auth mode = %q", cfg.Security.AuthMode)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Security.AuthMode != "jwt" {
		t.Errorf("auth mode = %q", cfg.Security.AuthMode)
	}
	if cfg.Security.SessionTTL != time.Hour {
		t.Errorf("session ttl = %v", cfg.Security.SessionTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 ||
		cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("cors origins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 3000
  static_dir: /srv/lunchmap/web
store:
  backend: file
  data_path: /srv/lunchmap/data.json
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Store.DataPath != "/srv/lunchmap/data.json" {
		t.Errorf("data path = %q", cfg.Store.DataPath)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	// Untouched sections keep their defaults.
	if cfg.Security.SessionTTL != 12*time.Hour {
		t.Errorf("session ttl = %v, want default 12h", cfg.Security.SessionTTL)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 3000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "4000")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("port = %d, want env override 4000", cfg.Server.Port)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"bad backend", func(c *Config) { c.Store.Backend = "duckdb" }, "store.backend"},
		{"file backend without path", func(c *Config) { c.Store.DataPath = " " }, "store.data_path"},
		{"bad auth mode", func(c *Config) { c.Security.AuthMode = "oauth" }, "security.auth_mode"},
		{"jwt without secret", func(c *Config) { c.Security.AuthMode = "jwt" }, "security.jwt_secret"},
		{"short jwt secret", func(c *Config) {
			c.Security.AuthMode = "jwt"
			c.Security.JWTSecret = "short"
		}, "security.jwt_secret"},
		{"bad session store", func(c *Config) { c.Security.SessionStore = "redis" }, "security.session_store"},
		{"badger without path", func(c *Config) {
			c.Security.SessionStore = "badger"
			c.Security.SessionStorePath = ""
		}, "security.session_store_path"},
		{"zero ttl", func(c *Config) { c.Security.SessionTTL = 0 }, "security.session_ttl"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate accepted invalid config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := c.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}
