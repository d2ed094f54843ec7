// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/middleware"
)

// Router assembles the HTTP surface.
type Router struct {
	handler       *Handler
	authenticator *auth.Authenticator
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a router. staticDir points at the built frontend;
// empty disables static serving (API-only deployments and tests).
func NewRouter(handler *Handler, authenticator *auth.Authenticator, mw *ChiMiddleware, staticDir string) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		authenticator: authenticator,
		chiMiddleware: mw,
		staticDir:     staticDir,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.Compression)

	// Health, permissively rate limited for monitoring tools.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Authentication. Strict limits; login stricter still.
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/register", router.handler.Register)
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
		r.Post("/logout", router.handler.Logout)
		r.With(router.authenticator.Middleware).Get("/me", router.handler.Me)
	})

	// Public metadata for the registration form.
	r.Route("/api/v1/meta", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/teams", router.handler.Teams)
		r.Get("/departments", router.handler.Departments)
	})

	// Restaurant directory. Everything here requires authentication.
	r.Route("/api/v1/restaurants", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.authenticator.Middleware)

		r.Get("/", router.handler.ListRestaurants)
		r.Post("/", router.handler.CreateRestaurant)
		r.Get("/{id}", router.handler.GetRestaurant)
		r.Delete("/{id}", router.handler.DeleteRestaurant)
		r.Post("/{id}/reviews", router.handler.AddReview)
		r.Delete("/{id}/reviews/{reviewId}", router.handler.DeleteReview)
	})

	// Unknown API paths answer JSON, not the SPA shell.
	r.Route("/api", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, req *http.Request) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown API endpoint", nil)
		})
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())

	// Static files and SPA fallback; must be last.
	if router.staticDir != "" {
		r.Get("/*", router.serveStaticOrIndex)
	}

	return r
}
