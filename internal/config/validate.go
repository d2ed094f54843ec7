// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package config

import (
	"fmt"
	"strings"
)

const minJWTSecretLen = 32

// Validate checks the configuration for values that would fail at
// runtime. It returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %v", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive, got %v", c.Server.WriteTimeout)
	}

	switch c.Store.Backend {
	case "file":
		if strings.TrimSpace(c.Store.DataPath) == "" {
			return fmt.Errorf("store.data_path is required for the file backend")
		}
	case "memory":
	default:
		return fmt.Errorf("store.backend must be file or memory, got %q", c.Store.Backend)
	}

	switch c.Security.AuthMode {
	case "session":
		switch c.Security.SessionStore {
		case "memory":
		case "badger":
			if strings.TrimSpace(c.Security.SessionStorePath) == "" {
				return fmt.Errorf("security.session_store_path is required for the badger session store")
			}
		default:
			return fmt.Errorf("security.session_store must be memory or badger, got %q", c.Security.SessionStore)
		}
	case "jwt":
		if len(c.Security.JWTSecret) < minJWTSecretLen {
			return fmt.Errorf("security.jwt_secret must be at least %d characters in jwt mode", minJWTSecretLen)
		}
	default:
		return fmt.Errorf("security.auth_mode must be session or jwt, got %q", c.Security.AuthMode)
	}

	if c.Security.SessionTTL <= 0 {
		return fmt.Errorf("security.session_ttl must be positive, got %v", c.Security.SessionTTL)
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
