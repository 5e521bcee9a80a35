// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/crypto-admin-api/internal/logger"

// Storages groups the repositories built on one database connection.
type Storages struct {
	CryptoOrderRepository  CryptoOrderRepository
	IdentityUserRepository IdentityUserRepository
	HealthChecker          HealthChecker
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CryptoOrderRepository:  NewCryptoOrderRepository(db, log),
		IdentityUserRepository: NewIdentityUserRepository(db, log),
		HealthChecker:          db,
	}
}
