// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic between HTTP handlers and the
// outbound adapters and repositories.
package service

import (
	"context"

	"github.com/MKhiriev/crypto-admin-api/models"
)

// AuthService manages admin sessions on top of an identity provider.
type AuthService interface {
	// CreateSession verifies idToken, requires the admin claim and mints a
	// session cookie.
	CreateSession(ctx context.Context, idToken string) (models.Session, error)

	// SetAdmin grants the admin claim to the account registered with email
	// and returns a custom token carrying the new claims.
	SetAdmin(ctx context.Context, email string) (string, error)

	// VerifySession verifies a session cookie and returns its claims. A
	// valid session without the admin claim is not an error.
	VerifySession(ctx context.Context, cookie string) (models.Claims, error)

	// CheckBootstrapKey guards SetAdmin when a bootstrap key is configured.
	CheckBootstrapKey(ctx context.Context, key string) error
}

type OrderService interface {
	ListCryptoOrders(ctx context.Context) ([]models.CryptoOrder, error)
}

type EmailService interface {
	// SendCryptoOrderEmails notifies the admin about an order and, when the
	// payload carries a customer address, confirms it to the customer.
	SendCryptoOrderEmails(ctx context.Context, order models.CryptoOrderEmail) error

	// SendTemplateEmail renders the requested template for request.User and
	// delivers it.
	SendTemplateEmail(ctx context.Context, request models.TemplateEmailRequest) (models.EmailReceipt, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Ping(ctx context.Context) error
}
