// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so that config files can carry human readable
// values like "30s" or "120h".
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// UnmarshalYAML accepts a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type fileConfig struct {
	App struct {
		Environment       string   `json:"environment" yaml:"environment"`
		Version           string   `json:"version" yaml:"version"`
		SessionDuration   Duration `json:"session_duration" yaml:"session_duration"`
		IdentityProvider  string   `json:"identity_provider" yaml:"identity_provider"`
		AdminBootstrapKey string   `json:"admin_bootstrap_key" yaml:"admin_bootstrap_key"`
		TokenSignKey      string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer" yaml:"token_issuer"`
	} `json:"app" yaml:"app"`
	Server struct {
		Address         string   `json:"address" yaml:"address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`
	Storage struct {
		DB struct {
			DSN             string   `json:"dsn" yaml:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns" yaml:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns" yaml:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
			AutoMigrate     bool     `json:"auto_migrate" yaml:"auto_migrate"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`
	Firebase struct {
		ProjectID       string `json:"project_id" yaml:"project_id"`
		CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
		CredentialsJSON string `json:"credentials_json" yaml:"credentials_json"`
	} `json:"firebase" yaml:"firebase"`
	Email struct {
		Provider       string   `json:"provider" yaml:"provider"`
		APIURL         string   `json:"api_url" yaml:"api_url"`
		APIKey         string   `json:"api_key" yaml:"api_key"`
		From           string   `json:"from" yaml:"from"`
		AdminAddress   string   `json:"admin_address" yaml:"admin_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"email" yaml:"email"`
	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

// parseConfigFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
func parseConfigFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:       fc.App.Environment,
			Version:           fc.App.Version,
			SessionDuration:   fc.App.SessionDuration.Duration,
			IdentityProvider:  fc.App.IdentityProvider,
			AdminBootstrapKey: fc.App.AdminBootstrapKey,
			TokenSignKey:      fc.App.TokenSignKey,
			TokenIssuer:       fc.App.TokenIssuer,
		},
		Server: Server{
			HTTPAddress:     fc.Server.Address,
			RequestTimeout:  fc.Server.RequestTimeout.Duration,
			ShutdownTimeout: fc.Server.ShutdownTimeout.Duration,
		},
		Storage: Storage{
			DB: DB{
				DSN:             fc.Storage.DB.DSN,
				MaxOpenConns:    fc.Storage.DB.MaxOpenConns,
				MaxIdleConns:    fc.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: fc.Storage.DB.ConnMaxLifetime.Duration,
				AutoMigrate:     fc.Storage.DB.AutoMigrate,
			},
		},
		Firebase: Firebase{
			ProjectID:       fc.Firebase.ProjectID,
			CredentialsFile: fc.Firebase.CredentialsFile,
			CredentialsJSON: fc.Firebase.CredentialsJSON,
		},
		Email: Email{
			Provider:       fc.Email.Provider,
			APIURL:         fc.Email.APIURL,
			APIKey:         fc.Email.APIKey,
			From:           fc.Email.From,
			AdminAddress:   fc.Email.AdminAddress,
			RequestTimeout: fc.Email.RequestTimeout.Duration,
		},
		Log: Log{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}
}
