// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultSessionDuration is five days. The identity provider caps session
// cookies at two weeks.
const defaultSessionDuration = 5 * 24 * time.Hour

// DefaultAppVersion is reported when neither configuration nor build flags
// set a version.
const DefaultAppVersion = "dev"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:      "development",
			Version:          DefaultAppVersion,
			SessionDuration:  defaultSessionDuration,
			IdentityProvider: IdentityProviderFirebase,
			TokenIssuer:      "crypto-admin-api",
		},
		Server: Server{
			HTTPAddress:     ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    10,
				MaxIdleConns:    4,
				ConnMaxLifetime: time.Hour,
			},
		},
		Email: Email{
			Provider:       EmailProviderLog,
			RequestTimeout: 10 * time.Second,
		},
		Log: Log{
			Level: "debug",
		},
	}
}
