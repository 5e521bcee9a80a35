// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/crypto-admin-api/internal/adapter"
	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// identity verifies tokens and manages custom claims.
	identity adapter.IdentityProvider

	// sessionDuration is the lifetime of a minted session cookie.
	sessionDuration time.Duration

	// bootstrapKey guards SetAdmin when non-empty.
	bootstrapKey string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by identity.
func NewAuthService(identity adapter.IdentityProvider, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		identity:        identity,
		sessionDuration: cfg.SessionDuration,
		bootstrapKey:    cfg.AdminBootstrapKey,
		logger:          logger,
	}
}

// CreateSession verifies idToken and exchanges it for a session cookie.
//
// Returns:
//   - ErrInvalidIDToken if the identity provider rejects the token.
//   - ErrNotAdmin if the decoded claims do not carry admin == true. No
//     cookie is minted in that case.
//   - ErrSessionCreationFailed if the provider fails to mint the cookie.
func (a *authService) CreateSession(ctx context.Context, idToken string) (models.Session, error) {
	log := logger.FromContext(ctx)

	claims, err := a.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		log.Err(err).Str("func", "authService.CreateSession").Msg("ID token verification failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	if !claims.IsAdmin() {
		log.Warn().Str("func", "authService.CreateSession").Str("uid", claims.UID).Msg("session requested by non-admin")
		return models.Session{}, ErrNotAdmin
	}

	cookie, err := a.identity.CreateSessionCookie(ctx, idToken, a.sessionDuration)
	if err != nil {
		log.Err(err).Str("func", "authService.CreateSession").Str("uid", claims.UID).Msg("session cookie creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return models.Session{Cookie: cookie, ExpiresIn: a.sessionDuration}, nil
}

// SetAdmin looks the user up by email, sets {"admin": true} and returns a
// custom token with the new claims.
func (a *authService) SetAdmin(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.identity.GetUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "authService.SetAdmin").Str("email", email).Msg("user lookup failed")
		return "", fmt.Errorf("%w: %w", ErrUserLookupFailed, err)
	}

	if err = a.identity.SetAdminClaim(ctx, user.UID); err != nil {
		log.Err(err).Str("func", "authService.SetAdmin").Str("uid", user.UID).Msg("setting admin claim failed")
		return "", fmt.Errorf("%w: %w", ErrSetClaimsFailed, err)
	}

	token, err := a.identity.CustomToken(ctx, user.UID)
	if err != nil {
		log.Err(err).Str("func", "authService.SetAdmin").Str("uid", user.UID).Msg("custom token creation failed")
		return "", fmt.Errorf("%w: %w", ErrCustomTokenFailed, err)
	}

	log.Info().Str("uid", user.UID).Str("email", email).Msg("admin claim granted")
	return token, nil
}

// VerifySession checks cookie with revocation and returns its claims.
func (a *authService) VerifySession(ctx context.Context, cookie string) (models.Claims, error) {
	claims, err := a.identity.VerifySessionCookie(ctx, cookie)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.VerifySession").Msg("session verification failed")
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	return claims, nil
}

// CheckBootstrapKey returns ErrInvalidBootstrapKey when a bootstrap key is
// configured and key does not match it. With no key configured every call
// passes.
func (a *authService) CheckBootstrapKey(ctx context.Context, key string) error {
	if a.bootstrapKey == "" {
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(a.bootstrapKey), []byte(key)) != 1 {
		logger.FromContext(ctx).Warn().Str("func", "authService.CheckBootstrapKey").Msg("bootstrap key mismatch")
		return ErrInvalidBootstrapKey
	}

	return nil
}
