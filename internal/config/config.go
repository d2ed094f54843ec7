// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package config loads and validates application configuration with
// layered precedence: environment variables over an optional YAML file
// over built-in defaults.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root configuration for the Lunchmap server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. 0.0.0.0 binds all interfaces.
	Host string `koanf:"host"`

	// Port is the HTTP listen port.
	Port int `koanf:"port"`

	// ReadTimeout and WriteTimeout bound request processing.
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout is how long graceful shutdown waits for active
	// connections to drain.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// StaticDir points at the built frontend. Empty disables static
	// serving (API-only deployments).
	StaticDir string `koanf:"static_dir"`
}

// StoreConfig holds dataset persistence settings.
type StoreConfig struct {
	// Backend selects the dataset store: "file" or "memory".
	// Memory loses all data at shutdown; use it for demos only.
	Backend string `koanf:"backend"`

	// DataPath is the JSON data file location for the file backend.
	DataPath string `koanf:"data_path"`
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	// AuthMode selects token issuance: "session" (revocable, stored
	// server-side) or "jwt" (self-contained HS256).
	AuthMode string `koanf:"auth_mode"`

	// JWTSecret signs tokens in jwt mode. Minimum 32 characters.
	JWTSecret string `koanf:"jwt_secret"`

	// SessionTTL is how long issued tokens stay valid.
	SessionTTL time.Duration `koanf:"session_ttl"`

	// SessionStore selects session persistence in session mode:
	// "memory" or "badger".
	SessionStore string `koanf:"session_store"`

	// SessionStorePath is the badger database directory.
	SessionStorePath string `koanf:"session_store_path"`

	// SessionSweepInterval is how often expired sessions are purged.
	SessionSweepInterval time.Duration `koanf:"session_sweep_interval"`

	// RateLimitReqs and RateLimitWindow set the default per-IP limit
	// for API routes. Auth routes carry stricter built-in limits.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists allowed cross-origin hosts. Empty means
	// same-origin only.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// Caller adds file:line to each entry. Costs an allocation per log.
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with all defaults applied. These are
// layered first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			StaticDir:       "web",
		},
		Store: StoreConfig{
			Backend:  "file",
			DataPath: "data/lunchmap.json",
		},
		Security: SecurityConfig{
			AuthMode:             "session",
			JWTSecret:            "",
			SessionTTL:           12 * time.Hour,
			SessionStore:         "memory",
			SessionStorePath:     "data/sessions",
			SessionSweepInterval: 15 * time.Minute,
			RateLimitReqs:        100,
			RateLimitWindow:      time.Minute,
			CORSOrigins:          []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
