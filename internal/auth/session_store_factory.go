// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package auth

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// SessionStoreType selects the session persistence backend.
type SessionStoreType string

const (
	// SessionStoreMemory keeps sessions in process memory. Logins do not
	// survive a restart.
	SessionStoreMemory SessionStoreType = "memory"

	// SessionStoreBadger persists sessions in an embedded Badger
	// database under the configured path.
	SessionStoreBadger SessionStoreType = "badger"
)

// NewSessionStore constructs the configured session store. The path is
// only consulted for the badger backend.
func NewSessionStore(storeType SessionStoreType, path string) (SessionStore, error) {
	switch storeType {
	case SessionStoreMemory, "":
		return NewMemorySessionStore(), nil

	case SessionStoreBadger:
		if path == "" {
			return nil, fmt.Errorf("badger session store requires a path")
		}
		opts := badger.DefaultOptions(path)
		opts.Logger = nil
		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open session database at %s: %w", path, err)
		}
		return NewBadgerSessionStore(db), nil

	default:
		return nil, fmt.Errorf("unknown session store type %q", storeType)
	}
}
