// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionDuration <= 0 {
		return fmt.Errorf("%w: session duration must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.App.IdentityProvider {
	case IdentityProviderFirebase:
		if cfg.Firebase.ProjectID == "" {
			return fmt.Errorf("%w: firebase project id is required", ErrInvalidIdentityConfigs)
		}
	case IdentityProviderLocal:
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
			return fmt.Errorf("%w: local provider needs token sign key and issuer", ErrInvalidIdentityConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown identity provider %q", ErrInvalidIdentityConfigs, cfg.App.IdentityProvider)
	}

	switch cfg.Email.Provider {
	case EmailProviderHTTP:
		if cfg.Email.APIURL == "" || cfg.Email.APIKey == "" || cfg.Email.From == "" {
			return fmt.Errorf("%w: http provider needs api url, api key and sender", ErrInvalidEmailConfigs)
		}
	case EmailProviderLog:
	default:
		return fmt.Errorf("%w: unknown email provider %q", ErrInvalidEmailConfigs, cfg.Email.Provider)
	}

	return nil
}
