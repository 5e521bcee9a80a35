// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/models"
)

// cryptoOrderRepository is the GORM-backed implementation of
// [CryptoOrderRepository] over the "crypto_orders" table.
type cryptoOrderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCryptoOrderRepository constructs a [CryptoOrderRepository] backed by the
// provided database connection and logger.
func NewCryptoOrderRepository(db *DB, logger *logger.Logger) CryptoOrderRepository {
	logger.Debug().Msg("creating crypto order repository")
	return &cryptoOrderRepository{
		db:     db,
		logger: logger,
	}
}

// ListByRecency selects all orders sorted by creation time, newest first.
// Rows sharing a creation time are ordered by id, also descending, so the
// result is stable between calls.
func (r *cryptoOrderRepository) ListByRecency(ctx context.Context) ([]models.CryptoOrder, error) {
	orders := make([]models.CryptoOrder, 0)

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, r.db.wrapQueryError(ctx, "*cryptoOrderRepository.ListByRecency", err)
	}

	return orders, nil
}
