// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package main is the entry point for the Lunchmap server.
//
// Lunchmap is a self-hosted lunch spot directory for teams: members
// register with a team join code, pin restaurants near the office, and
// rate them 1-5 stars. Ratings are aggregated per department so the
// engineering floor's noodle obsession doesn't drown out everyone else.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from env vars and config.yaml (Koanf v2)
//  2. Logging: zerolog, structured JSON by default
//  3. Store: the JSON dataset file (or in-memory for demos)
//  4. Authentication: session tokens (memory or badger) or HS256 JWT
//  5. Service: domain logic over the store
//  6. HTTP API: chi router with rate limiting and Prometheus metrics
//  7. Supervisor: suture tree running the HTTP server and session sweeper
//
// # Configuration
//
// Configuration precedence, highest first:
//   - Environment variables (HTTP_PORT, DATA_PATH, AUTH_MODE, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests within the shutdown
// timeout, then closes the session store.
//
// # Example Usage
//
// Development with the in-memory store:
//
//	export STORE_BACKEND=memory
//	export LOG_FORMAT=console
//	./lunchmap
//
// Production with persistent sessions:
//
//	export DATA_PATH=/data/lunchmap.json
//	export SESSION_STORE=badger
//	export SESSION_STORE_PATH=/data/sessions
//	./lunchmap
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/lunchmap/internal/api"
	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/config"
	"github.com/tomtom215/lunchmap/internal/logging"
	"github.com/tomtom215/lunchmap/internal/service"
	"github.com/tomtom215/lunchmap/internal/store"
	"github.com/tomtom215/lunchmap/internal/supervisor"
	"github.com/tomtom215/lunchmap/internal/supervisor/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("store_backend", cfg.Store.Backend).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting Lunchmap")

	// Dataset store
	var dataStore store.Store
	switch cfg.Store.Backend {
	case "memory":
		logging.Warn().Msg("Using in-memory store; all data is lost at shutdown")
		dataStore = store.NewMemoryStore()
	default:
		dataStore = store.NewFileStore(cfg.Store.DataPath)
	}
	dataStore = store.Instrument(dataStore)

	// Prime the store so a broken data file fails at startup, not on the
	// first request.
	if _, err := dataStore.Load(context.Background()); err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Store.DataPath).Msg("Failed to load dataset")
	}

	// Authentication
	var sessionStore auth.SessionStore
	var jwtManager *auth.JWTManager

	switch cfg.Security.AuthMode {
	case "jwt":
		jwtManager, err = auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.SessionTTL)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		logging.Info().Msg("JWT authentication enabled")
	default:
		sessionStore, err = auth.NewSessionStore(
			auth.SessionStoreType(cfg.Security.SessionStore),
			cfg.Security.SessionStorePath,
		)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize session store")
		}
		defer func() {
			if err := sessionStore.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing session store")
			}
		}()
		logging.Info().Str("session_store", cfg.Security.SessionStore).Msg("Session authentication enabled")
	}

	authenticator := auth.NewAuthenticator(
		auth.Mode(cfg.Security.AuthMode),
		sessionStore,
		jwtManager,
		cfg.Security.SessionTTL,
	)

	// Domain service and HTTP surface
	svc := service.New(dataStore, authenticator, version)
	handler := api.NewHandler(svc, authenticator)

	mw := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
	})
	router := api.NewRouter(handler, authenticator, mw, cfg.Server.StaticDir)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Supervisor tree: the HTTP server in the api layer, the session
	// sweeper in maintenance. sutureslog needs an slog.Logger, so bridge
	// zerolog through the adapter.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if sessionStore != nil {
		tree.AddMaintenanceService(services.NewSweeperService(sessionStore, cfg.Security.SessionSweepInterval))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree exited with error")
		os.Exit(1)
	}

	logging.Info().Msg("Lunchmap stopped")
}
