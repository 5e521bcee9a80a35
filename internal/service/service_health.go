// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/crypto-admin-api/internal/store"
)

type healthService struct {
	db store.HealthChecker
}

func NewHealthService(db store.HealthChecker) HealthService {
	return &healthService{db: db}
}

func (h *healthService) Ping(ctx context.Context) error {
	if err := h.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
