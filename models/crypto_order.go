// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CryptoOrder is a crypto purchase order as stored in the "crypto_orders"
// table. The service only reads these rows; creation and mutation belong to
// the checkout flow that owns the table.
type CryptoOrder struct {
	// ID is the database primary key.
	ID int64 `gorm:"primaryKey;column:id" json:"id"`

	// OrderNumber is the human-facing order reference shown to customers.
	OrderNumber string `gorm:"column:order_number;uniqueIndex" json:"orderNumber"`

	CustomerName  string `gorm:"column:customer_name" json:"customerName"`
	CustomerEmail string `gorm:"column:customer_email" json:"customerEmail"`

	// Asset is the ticker of the purchased coin (e.g. "BTC").
	Asset   string `gorm:"column:asset" json:"asset"`
	Network string `gorm:"column:network" json:"network"`

	// Amount is the quantity of Asset, kept as a decimal to avoid float drift.
	Amount decimal.Decimal `gorm:"column:amount;type:numeric(36,18)" json:"amount"`

	FiatAmount   decimal.Decimal `gorm:"column:fiat_amount;type:numeric(20,2)" json:"fiatAmount"`
	FiatCurrency string          `gorm:"column:fiat_currency" json:"fiatCurrency"`

	WalletAddress string `gorm:"column:wallet_address" json:"walletAddress"`
	Status        string `gorm:"column:status" json:"status"`

	// CreatedAt is the only field this service relies on: orders are listed
	// newest first.
	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the default table name for GORM.
func (CryptoOrder) TableName() string {
	return "crypto_orders"
}
