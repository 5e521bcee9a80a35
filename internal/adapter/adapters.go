// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/store"
)

// Adapters groups the outbound integrations selected by configuration.
type Adapters struct {
	IdentityProvider IdentityProvider
	EmailSender      EmailSender
}

// NewAdapters builds the identity provider and email sender named in cfg.
func NewAdapters(ctx context.Context, cfg *config.StructuredConfig, storages *store.Storages, log *logger.Logger) (*Adapters, error) {
	identity, err := NewIdentityProvider(ctx, cfg, storages.IdentityUserRepository, log)
	if err != nil {
		return nil, err
	}

	sender, err := NewEmailSender(cfg.Email, log)
	if err != nil {
		return nil, err
	}

	return &Adapters{IdentityProvider: identity, EmailSender: sender}, nil
}

// NewIdentityProvider returns the provider named by cfg.App.IdentityProvider.
func NewIdentityProvider(ctx context.Context, cfg *config.StructuredConfig, users store.IdentityUserRepository, log *logger.Logger) (IdentityProvider, error) {
	switch cfg.App.IdentityProvider {
	case config.IdentityProviderFirebase:
		return NewFirebaseIdentityProvider(ctx, cfg.Firebase, log)
	case config.IdentityProviderLocal:
		return NewLocalIdentityProvider(cfg.App, users, log), nil
	default:
		return nil, fmt.Errorf("%w: identity provider %q", ErrUnknownProvider, cfg.App.IdentityProvider)
	}
}

// NewEmailSender returns the sender named by cfg.Provider.
func NewEmailSender(cfg config.Email, log *logger.Logger) (EmailSender, error) {
	switch cfg.Provider {
	case config.EmailProviderHTTP:
		return NewHTTPEmailSender(cfg, log)
	case config.EmailProviderLog:
		return NewLogEmailSender(log), nil
	default:
		return nil, fmt.Errorf("%w: email provider %q", ErrUnknownProvider, cfg.Provider)
	}
}
