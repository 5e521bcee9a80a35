// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the given "KEY=value" environment list using
// the caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg any, environ []string) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Environment: toEnvMap(environ),
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func toEnvMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[key] = value
	}
	return m
}
