// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Identity provider errors.
var (
	ErrInvalidToken   = errors.New("invalid id token")
	ErrInvalidSession = errors.New("invalid session cookie")
	ErrSessionRevoked = errors.New("session cookie revoked")
	ErrUserNotFound   = errors.New("identity user not found")
	ErrIdentity       = errors.New("identity provider error")
)

// Email provider errors, mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("email provider rejected the message")
	ErrUnauthorized        = errors.New("email provider unauthorized")
	ErrRateLimited         = errors.New("email provider rate limit exceeded")
	ErrProviderUnavailable = errors.New("email provider unavailable")
)

// ErrUnknownProvider is returned by the factories for unsupported provider
// names.
var ErrUnknownProvider = errors.New("unknown provider")
