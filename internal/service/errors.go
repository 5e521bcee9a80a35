// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidIDToken        = errors.New("invalid ID token")
	ErrNotAdmin              = errors.New("admin access required")
	ErrSessionCreationFailed = errors.New("session cookie creation failed")
	ErrInvalidSession        = errors.New("invalid session")
	ErrUserLookupFailed      = errors.New("user lookup failed")
	ErrSetClaimsFailed       = errors.New("setting admin claim failed")
	ErrCustomTokenFailed     = errors.New("custom token creation failed")
	ErrInvalidBootstrapKey   = errors.New("invalid admin bootstrap key")

	ErrListingOrders       = errors.New("listing crypto orders failed")
	ErrRenderingEmail      = errors.New("rendering email failed")
	ErrSendingEmail        = errors.New("sending email failed")
	ErrNoRecipients        = errors.New("no email recipients")
	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
