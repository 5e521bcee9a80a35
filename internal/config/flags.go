// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config JSON or YAML file path with configs
//	-env deployment environment
//	-identity-provider identity provider (firebase|local)
//	-firebase-project firebase project id
//	-token-sign-key token signing key of the local provider
//	-token-issuer token issuer of the local provider
//	-session-duration session cookie lifetime (e.g., "120h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-email-provider email provider (http|log)
//	-log-level log level
//	-migrate run migrations on startup
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var configPath string
	var environment string
	var identityProvider string
	var firebaseProject string
	var tokenSignKey string
	var tokenIssuer string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var emailProvider string
	var logLevel string
	var migrate bool

	fs := flag.NewFlagSet("crypto-admin-api", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&environment, "env", "", "Deployment environment")
	fs.StringVar(&identityProvider, "identity-provider", "", "Identity provider (firebase|local)")
	fs.StringVar(&firebaseProject, "firebase-project", "", "Firebase project id")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session cookie lifetime (e.g., 120h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&emailProvider, "email-provider", "", "Email provider (http|log)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&migrate, "migrate", false, "Run database migrations on startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment:      environment,
			SessionDuration:  sessionDuration,
			IdentityProvider: identityProvider,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN:         databaseDSN,
				AutoMigrate: migrate,
			},
		},
		Firebase: Firebase{
			ProjectID: firebaseProject,
		},
		Email: Email{
			Provider: emailProvider,
		},
		Log: Log{
			Level: logLevel,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. A non-empty host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
