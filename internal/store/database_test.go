// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Ping_Success(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectPing()

	require.NoError(t, db.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Ping_Failure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := db.Ping(context.Background())
	assert.ErrorIs(t, err, ErrPingingDatabase)
}

func TestDB_Close(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectClose()

	require.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStorages_WiresRepositories(t *testing.T) {
	db, _ := newMockDB(t)

	s := NewStorages(db, logger.Nop())
	assert.NotNil(t, s.CryptoOrderRepository)
	assert.NotNil(t, s.IdentityUserRepository)
	assert.Same(t, db, s.HealthChecker)
}
