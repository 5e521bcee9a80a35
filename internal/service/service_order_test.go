// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/mock"
	"github.com/MKhiriev/crypto-admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListCryptoOrders_ReturnsRepositoryOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCryptoOrderRepository(ctrl)
	svc := NewOrderService(repo, logger.Nop())

	now := time.Now()
	orders := []models.CryptoOrder{
		{ID: 2, OrderNumber: "B", CreatedAt: now},
		{ID: 1, OrderNumber: "A", CreatedAt: now.Add(-time.Hour)},
	}
	repo.EXPECT().ListByRecency(gomock.Any()).Return(orders, nil)

	got, err := svc.ListCryptoOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestListCryptoOrders_NilBecomesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCryptoOrderRepository(ctrl)
	svc := NewOrderService(repo, logger.Nop())

	repo.EXPECT().ListByRecency(gomock.Any()).Return(nil, nil)

	got, err := svc.ListCryptoOrders(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCryptoOrders_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCryptoOrderRepository(ctrl)
	svc := NewOrderService(repo, logger.Nop())

	dbErr := errors.New("connection reset")
	repo.EXPECT().ListByRecency(gomock.Any()).Return(nil, dbErr)

	got, err := svc.ListCryptoOrders(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrListingOrders)
	assert.ErrorIs(t, err, dbErr)
}
