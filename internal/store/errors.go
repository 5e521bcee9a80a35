// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityUserNotFound is returned when no identity user matches the
	// given uid.
	ErrIdentityUserNotFound = errors.New("identity user was not found")
)

// Low-level database operation errors.
var (
	// ErrConnectingDatabase is returned when the connection cannot be opened.
	ErrConnectingDatabase = errors.New("error connecting database")

	// ErrPingingDatabase is returned when the database does not answer a ping.
	ErrPingingDatabase = errors.New("error pinging database")

	// ErrExecutingQuery is returned (wrapped) when a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
