// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/models"
	"google.golang.org/api/option"
)

// firebaseAuthClient is the subset of *auth.Client used by the adapter.
type firebaseAuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*auth.Token, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
	CustomToken(ctx context.Context, uid string) (string, error)
}

type firebaseIdentityProvider struct {
	client firebaseAuthClient
	logger *logger.Logger
}

// NewFirebaseIdentityProvider initialises the Firebase Admin SDK for the
// configured project and returns an [IdentityProvider] backed by Firebase
// Auth.
//
// Credentials are taken from cfg.CredentialsJSON, then cfg.CredentialsFile,
// and fall back to Application Default Credentials.
func NewFirebaseIdentityProvider(ctx context.Context, cfg config.Firebase, log *logger.Logger) (IdentityProvider, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase auth client: %w", err)
	}

	log.Info().Str("func", "NewFirebaseIdentityProvider").Str("project", cfg.ProjectID).Msg("firebase identity provider ready")
	return newFirebaseIdentityProvider(client, log), nil
}

func newFirebaseIdentityProvider(client firebaseAuthClient, log *logger.Logger) *firebaseIdentityProvider {
	return &firebaseIdentityProvider{client: client, logger: log}
}

func (f *firebaseIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (models.Claims, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claimsFromFirebaseToken(token), nil
}

func (f *firebaseIdentityProvider) CreateSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	cookie, err := f.client.SessionCookie(ctx, idToken, expiresIn)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	return cookie, nil
}

func (f *firebaseIdentityProvider) VerifySessionCookie(ctx context.Context, cookie string) (models.Claims, error) {
	token, err := f.client.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	if err != nil {
		return models.Claims{}, mapFirebaseSessionError(err)
	}

	return claimsFromFirebaseToken(token), nil
}

func (f *firebaseIdentityProvider) GetUserByEmail(ctx context.Context, email string) (models.IdentityUser, error) {
	record, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		return models.IdentityUser{}, mapFirebaseUserError(err)
	}

	user := models.IdentityUser{
		Admin: models.Claims{Custom: record.CustomClaims}.IsAdmin(),
	}
	if record.UserInfo != nil {
		user.UID = record.UID
		user.Email = record.Email
	}
	if record.UserMetadata != nil && record.UserMetadata.CreationTimestamp > 0 {
		user.CreatedAt = time.UnixMilli(record.UserMetadata.CreationTimestamp)
	}

	return user, nil
}

func (f *firebaseIdentityProvider) SetAdminClaim(ctx context.Context, uid string) error {
	if err := f.client.SetCustomUserClaims(ctx, uid, map[string]interface{}{models.AdminClaim: true}); err != nil {
		return mapFirebaseUserError(err)
	}

	return nil
}

func (f *firebaseIdentityProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	token, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentity, err)
	}

	return token, nil
}

func claimsFromFirebaseToken(token *auth.Token) models.Claims {
	claims := models.Claims{
		UID:    token.UID,
		Custom: token.Claims,
	}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	return claims
}
