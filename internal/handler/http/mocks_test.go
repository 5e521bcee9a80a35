// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/service"
	"github.com/MKhiriev/crypto-admin-api/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	createSessionFn     func(ctx context.Context, idToken string) (models.Session, error)
	setAdminFn          func(ctx context.Context, email string) (string, error)
	verifySessionFn     func(ctx context.Context, cookie string) (models.Claims, error)
	checkBootstrapKeyFn func(ctx context.Context, key string) error

	calls int
}

func (m *mockAuthService) CreateSession(ctx context.Context, idToken string) (models.Session, error) {
	m.calls++
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, idToken)
	}
	return models.Session{}, nil
}

func (m *mockAuthService) SetAdmin(ctx context.Context, email string) (string, error) {
	m.calls++
	if m.setAdminFn != nil {
		return m.setAdminFn(ctx, email)
	}
	return "", nil
}

func (m *mockAuthService) VerifySession(ctx context.Context, cookie string) (models.Claims, error) {
	m.calls++
	if m.verifySessionFn != nil {
		return m.verifySessionFn(ctx, cookie)
	}
	return models.Claims{}, nil
}

func (m *mockAuthService) CheckBootstrapKey(ctx context.Context, key string) error {
	if m.checkBootstrapKeyFn != nil {
		return m.checkBootstrapKeyFn(ctx, key)
	}
	return nil
}

type mockOrderService struct {
	listFn func(ctx context.Context) ([]models.CryptoOrder, error)

	calls int
}

func (m *mockOrderService) ListCryptoOrders(ctx context.Context) ([]models.CryptoOrder, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.CryptoOrder{}, nil
}

type mockEmailService struct {
	sendOrderFn    func(ctx context.Context, order models.CryptoOrderEmail) error
	sendTemplateFn func(ctx context.Context, request models.TemplateEmailRequest) (models.EmailReceipt, error)

	calls int
}

func (m *mockEmailService) SendCryptoOrderEmails(ctx context.Context, order models.CryptoOrderEmail) error {
	m.calls++
	if m.sendOrderFn != nil {
		return m.sendOrderFn(ctx, order)
	}
	return nil
}

func (m *mockEmailService) SendTemplateEmail(ctx context.Context, request models.TemplateEmailRequest) (models.EmailReceipt, error) {
	m.calls++
	if m.sendTemplateFn != nil {
		return m.sendTemplateFn(ctx, request)
	}
	return models.EmailReceipt{}, nil
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Ping(_ context.Context) error {
	return m.err
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig(environment string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{Environment: environment, Version: "test-version"},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestHandler builds a Handler around svcs. Nil service fields are filled
// with zero-value mocks so that routing tests never hit a nil interface.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return newTestHandlerWithConfig(t, svcs, testConfig("development"))
}

func newTestHandlerWithConfig(t *testing.T, svcs *service.Services, cfg *config.StructuredConfig) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.OrderService == nil {
		svcs.OrderService = &mockOrderService{}
	}
	if svcs.EmailService == nil {
		svcs.EmailService = &mockEmailService{}
	}
	if svcs.HealthService == nil {
		svcs.HealthService = &mockHealthService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: cfg.App.Version}
	}

	return NewHandler(svcs, cfg, logger.Nop())
}

type panickingAppInfo struct{}

func (panickingAppInfo) GetAppVersion(context.Context) string {
	panic("boom")
}
