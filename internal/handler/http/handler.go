// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/service"
	"github.com/MKhiriev/crypto-admin-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// secureCookies adds the Secure attribute to the session cookie.
	secureCookies bool
	// requestTimeout bounds every request; zero disables the timeout.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		secureCookies:  cfg.App.IsProduction(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
