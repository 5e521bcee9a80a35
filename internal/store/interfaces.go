// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/crypto-admin-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CryptoOrderRepository reads crypto orders.
type CryptoOrderRepository interface {
	// ListByRecency returns every order, newest first. An empty table yields
	// an empty, non-nil slice.
	ListByRecency(ctx context.Context) ([]models.CryptoOrder, error)
}

// IdentityUserRepository persists the users of the local identity provider.
type IdentityUserRepository interface {
	// FindOrCreateByEmail returns the user with email, creating it with uid
	// when it does not exist yet.
	FindOrCreateByEmail(ctx context.Context, email, uid string) (models.IdentityUser, error)
	// SetAdmin updates the admin flag of the user with uid.
	SetAdmin(ctx context.Context, uid string, admin bool) error
	// FindByUID returns the user with uid or ErrIdentityUserNotFound.
	FindByUID(ctx context.Context, uid string) (models.IdentityUser, error)
}

// HealthChecker reports database reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
