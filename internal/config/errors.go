// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidIdentityConfigs indicates an unknown identity provider or
	// missing provider settings.
	ErrInvalidIdentityConfigs = errors.New("invalid identity provider configuration")
	// ErrInvalidEmailConfigs indicates an unknown email provider or missing
	// provider settings.
	ErrInvalidEmailConfigs = errors.New("invalid email configuration")
)

var (
	// ErrUnsupportedConfigFile is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
	// ErrResolvingSecret is returned when an "ssm:" reference cannot be
	// resolved.
	ErrResolvingSecret = errors.New("error resolving secret")
)
