// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/store"
	"github.com/MKhiriev/crypto-admin-api/internal/utils"
	"github.com/MKhiriev/crypto-admin-api/models"
)

// customTokenDuration matches the one hour lifetime of Firebase custom tokens.
const customTokenDuration = time.Hour

// localIdentityProvider is a development [IdentityProvider] that signs its
// own HS256 tokens and keeps users in the identity_users table.
//
// Tokens minted by CustomToken are accepted by VerifyIDToken, so the full
// set-admin → create-session → verify-session flow works without Firebase.
type localIdentityProvider struct {
	users   store.IdentityUserRepository
	ids     *utils.UUIDGenerator
	signKey string
	issuer  string
	logger  *logger.Logger
}

// NewLocalIdentityProvider constructs the development identity provider.
func NewLocalIdentityProvider(cfg config.App, users store.IdentityUserRepository, log *logger.Logger) IdentityProvider {
	log.Warn().Str("func", "NewLocalIdentityProvider").Msg("using local identity provider, not for production")
	return &localIdentityProvider{
		users:   users,
		ids:     utils.NewUUIDGenerator(),
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		logger:  log,
	}
}

// VerifyIDToken accepts custom tokens and returns claims refreshed from the
// user record, the way an ID token obtained after sign-in would carry the
// latest custom claims.
func (l *localIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (models.Claims, error) {
	user, err := l.userFromToken(ctx, idToken, models.CustomTokenKind)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return identityToken(user, models.CustomTokenKind).ToClaims(), nil
}

func (l *localIdentityProvider) CreateSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	user, err := l.userFromToken(ctx, idToken, models.CustomTokenKind)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	cookie, err := utils.GenerateIdentityToken(l.issuer, l.signKey, expiresIn, identityToken(user, models.SessionTokenKind))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	return cookie, nil
}

// VerifySessionCookie returns the claims captured when the session was
// created. A session whose user no longer exists is treated as revoked.
func (l *localIdentityProvider) VerifySessionCookie(ctx context.Context, cookie string) (models.Claims, error) {
	token, err := utils.ValidateIdentityToken(cookie, l.signKey, l.issuer, models.SessionTokenKind)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	if _, err = l.users.FindByUID(ctx, token.Subject); err != nil {
		if errors.Is(err, store.ErrIdentityUserNotFound) {
			return models.Claims{}, fmt.Errorf("%w: %w", ErrSessionRevoked, err)
		}
		return models.Claims{}, fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	return token.ToClaims(), nil
}

// GetUserByEmail provisions unknown emails, so any address can be promoted
// in development.
func (l *localIdentityProvider) GetUserByEmail(ctx context.Context, email string) (models.IdentityUser, error) {
	user, err := l.users.FindOrCreateByEmail(ctx, email, l.ids.Generate())
	if err != nil {
		return models.IdentityUser{}, fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	return user, nil
}

func (l *localIdentityProvider) SetAdminClaim(ctx context.Context, uid string) error {
	if err := l.users.SetAdmin(ctx, uid, true); err != nil {
		if errors.Is(err, store.ErrIdentityUserNotFound) {
			return fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	return nil
}

func (l *localIdentityProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	user, err := l.users.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrIdentityUserNotFound) {
			return "", fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return "", fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	token, err := utils.GenerateIdentityToken(l.issuer, l.signKey, customTokenDuration, identityToken(user, models.CustomTokenKind))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	return token, nil
}

func (l *localIdentityProvider) userFromToken(ctx context.Context, raw string, kind models.TokenKind) (models.IdentityUser, error) {
	token, err := utils.ValidateIdentityToken(raw, l.signKey, l.issuer, kind)
	if err != nil {
		return models.IdentityUser{}, err
	}

	return l.users.FindByUID(ctx, token.Subject)
}

func identityToken(user models.IdentityUser, kind models.TokenKind) models.IdentityToken {
	token := models.IdentityToken{
		Email: user.Email,
		Admin: user.Admin,
		Kind:  kind,
	}
	token.Subject = user.UID
	return token
}
