// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package supervisor provides Suture-based process supervision for Lunchmap.
//
// The supervisor tree isolates the HTTP server from background maintenance
// so a panic in either restarts only that service. Service wrappers that
// adapt application components to suture.Service live in the services
// subpackage.
package supervisor
