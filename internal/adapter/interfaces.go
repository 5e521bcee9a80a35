// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the service: the
// identity provider that verifies tokens and manages admin claims, and the
// email sender that delivers rendered messages.
//
// [IdentityProvider] ships a Firebase Auth implementation
// ([NewFirebaseIdentityProvider]) and a self-contained JWT implementation for
// local development ([NewLocalIdentityProvider]). [EmailSender] ships an
// HTTP/JSON email API client ([NewHTTPEmailSender]) and a sender that only
// writes messages to the log ([NewLogEmailSender]).
//
// Error values defined in errors.go are mapped from provider errors and HTTP
// status codes so that callers can use [errors.Is] for provider-agnostic
// error handling.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/crypto-admin-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityProvider verifies identity tokens, mints session cookies and manages
// the admin custom claim.
type IdentityProvider interface {
	// VerifyIDToken checks the signature and expiry of an ID token issued to
	// a signed-in user and returns its claims. Fails with [ErrInvalidToken].
	VerifyIDToken(ctx context.Context, idToken string) (models.Claims, error)

	// CreateSessionCookie exchanges a valid ID token for a session cookie
	// that lives for expiresIn.
	CreateSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)

	// VerifySessionCookie checks a session cookie, including revocation, and
	// returns its claims. Fails with [ErrInvalidSession] or
	// [ErrSessionRevoked].
	VerifySessionCookie(ctx context.Context, cookie string) (models.Claims, error)

	// GetUserByEmail looks up the account registered with email. Fails with
	// [ErrUserNotFound] when the provider has no such account.
	GetUserByEmail(ctx context.Context, email string) (models.IdentityUser, error)

	// SetAdminClaim sets the custom claims of uid to {"admin": true}.
	SetAdminClaim(ctx context.Context, uid string) error

	// CustomToken mints a token the client can exchange for an ID token that
	// carries the current custom claims of uid.
	CustomToken(ctx context.Context, uid string) (string, error)
}

// EmailSender delivers rendered email messages.
type EmailSender interface {
	// Send hands msg to the delivery provider and returns the provider's
	// receipt.
	Send(ctx context.Context, msg models.EmailMessage) (models.EmailReceipt, error)
}
