// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/crypto-admin-api/internal/adapter"
	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/store"
	"github.com/MKhiriev/crypto-admin-api/internal/templates"
)

type Services struct {
	AuthService    AuthService
	OrderService   OrderService
	EmailService   EmailService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(adapters.IdentityProvider, cfg.App, logger),
		OrderService:   NewOrderService(storages.CryptoOrderRepository, logger),
		EmailService:   NewEmailService(adapters.EmailSender, renderer, cfg.Email, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.HealthChecker),
	}, nil
}
