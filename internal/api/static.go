// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package api

import (
	"net/http"
	"path/filepath"
	"strings"
)

// serveStaticOrIndex serves frontend assets, falling back to index.html
// for unknown paths so client-side routing works on refresh.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// Cache policy by asset type. HTML stays short so deploys propagate.
	switch {
	case strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".css"):
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case strings.HasSuffix(path, ".png") || strings.HasSuffix(path, ".svg") || strings.HasSuffix(path, ".ico"):
		w.Header().Set("Cache-Control", "public, max-age=604800")
	default:
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	if path != "/" && router.staticFileExists(path) {
		http.FileServer(http.Dir(router.staticDir)).ServeHTTP(w, r)
		return
	}

	// SPA fallback.
	http.ServeFile(w, r, filepath.Join(router.staticDir, "index.html"))
}

// staticFileExists reports whether the path resolves to a real file
// inside the static root. http.Dir confines traversal to the root.
func (router *Router) staticFileExists(path string) bool {
	f, err := http.Dir(router.staticDir).Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
