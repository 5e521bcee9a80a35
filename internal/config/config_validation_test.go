// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/orders"
	cfg.Firebase.ProjectID = "demo-project"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative session duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionDuration = -time.Hour },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown identity provider",
			mutate:  func(cfg *StructuredConfig) { cfg.App.IdentityProvider = "okta" },
			wantErr: ErrInvalidIdentityConfigs,
		},
		{
			name:    "firebase without project",
			mutate:  func(cfg *StructuredConfig) { cfg.Firebase.ProjectID = "" },
			wantErr: ErrInvalidIdentityConfigs,
		},
		{
			name: "local without sign key",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.IdentityProvider = IdentityProviderLocal
				cfg.App.TokenSignKey = ""
			},
			wantErr: ErrInvalidIdentityConfigs,
		},
		{
			name: "local with sign key and issuer",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.IdentityProvider = IdentityProviderLocal
				cfg.App.TokenSignKey = "secret"
			},
		},
		{
			name:    "unknown email provider",
			mutate:  func(cfg *StructuredConfig) { cfg.Email.Provider = "smtp" },
			wantErr: ErrInvalidEmailConfigs,
		},
		{
			name: "http email without key",
			mutate: func(cfg *StructuredConfig) {
				cfg.Email.Provider = EmailProviderHTTP
				cfg.Email.APIURL = "https://mail"
				cfg.Email.From = "a@b.c"
			},
			wantErr: ErrInvalidEmailConfigs,
		},
		{
			name: "http email complete",
			mutate: func(cfg *StructuredConfig) {
				cfg.Email.Provider = EmailProviderHTTP
				cfg.Email.APIURL = "https://mail"
				cfg.Email.APIKey = "key"
				cfg.Email.From = "a@b.c"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
