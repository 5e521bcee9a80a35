// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/store"
	"github.com/MKhiriev/crypto-admin-api/models"
)

type orderService struct {
	orderRepository store.CryptoOrderRepository

	logger *logger.Logger
}

func NewOrderService(orderRepository store.CryptoOrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// ListCryptoOrders returns all orders, newest first. The result is never nil.
func (o *orderService) ListCryptoOrders(ctx context.Context) ([]models.CryptoOrder, error) {
	orders, err := o.orderRepository.ListByRecency(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListingOrders, err)
	}

	if orders == nil {
		orders = []models.CryptoOrder{}
	}

	return orders, nil
}
