// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// Zero fields are then filled from defaults, and values of the form
// "ssm:<parameter name>" are replaced with the decrypted value from AWS SSM
// Parameter Store.
//
// The main entry point is [GetStructuredConfig].
package config
