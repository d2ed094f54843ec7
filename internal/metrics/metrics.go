// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package metrics exposes Prometheus instrumentation for the API surface,
// the dataset store, and the auth flows. All collectors register on the
// default registry; /metrics serves them via promhttp.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunchmap_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lunchmap_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lunchmap_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunchmap_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Dataset store metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lunchmap_store_operation_duration_seconds",
			Help:    "Duration of dataset load and save operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "load", "save"
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunchmap_store_errors_total",
			Help: "Total number of failed dataset operations",
		},
		[]string{"operation"},
	)

	DatasetEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lunchmap_dataset_entities",
			Help: "Current number of entities in the dataset by collection",
		},
		[]string{"collection"}, // "teams", "users", "restaurants", "reviews"
	)

	// Auth metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunchmap_auth_attempts_total",
			Help: "Total number of login and registration attempts",
		},
		[]string{"operation", "outcome"}, // operation: "login", "register"; outcome: "success", "failure"
	)

	SessionsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lunchmap_sessions_swept_total",
			Help: "Total number of expired sessions removed by the sweeper",
		},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request per endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordStoreOperation records a dataset load or save.
func RecordStoreOperation(operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(operation).Inc()
	}
}

// UpdateDatasetGauges publishes the current collection sizes.
func UpdateDatasetGauges(teams, users, restaurants, reviews int) {
	DatasetEntities.WithLabelValues("teams").Set(float64(teams))
	DatasetEntities.WithLabelValues("users").Set(float64(users))
	DatasetEntities.WithLabelValues("restaurants").Set(float64(restaurants))
	DatasetEntities.WithLabelValues("reviews").Set(float64(reviews))
}

// RecordAuthAttempt counts a login or registration outcome.
func RecordAuthAttempt(operation string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	AuthAttempts.WithLabelValues(operation, outcome).Inc()
}

// RecordSessionsSwept counts sessions removed by the maintenance sweeper.
func RecordSessionsSwept(n int) {
	SessionsSwept.Add(float64(n))
}
