// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/crypto-admin-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateIdentityToken signs an HMAC-SHA256 JWT carrying the given identity
// claims.
//
// The issuer, "iat" and "exp" registered claims are set here; the subject,
// email, admin flag and kind are taken from claims.
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	signed, err := utils.GenerateIdentityToken("crypto-admin-api", "secret", time.Hour,
//	    models.IdentityToken{Email: "a@b.c", Kind: models.CustomTokenKind})
func GenerateIdentityToken(issuer, signKey string, tokenDuration time.Duration, claims models.IdentityToken) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || claims.Subject == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims.Issuer = issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateIdentityToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//   - Kind claim check against the expected kind
//
// Example usage:
//
//	token, err := utils.ValidateIdentityToken(rawToken, "secret", "crypto-admin-api", models.SessionTokenKind)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateIdentityToken(tokenString, tokenSignKey, tokenIssuer string, kind models.TokenKind) (models.IdentityToken, error) {
	var claims models.IdentityToken
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.IdentityToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.IdentityToken{}, errors.New("empty subject error")
	}

	if claims.Kind != kind {
		return models.IdentityToken{}, fmt.Errorf("unexpected token kind %q", claims.Kind)
	}

	return claims, nil
}
