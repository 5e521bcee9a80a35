// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the tokens minted by the local identity provider.
type TokenKind string

const (
	// CustomTokenKind is handed out by set-admin and accepted as an ID token.
	CustomTokenKind TokenKind = "custom"

	// SessionTokenKind is stored in the "session" cookie.
	SessionTokenKind TokenKind = "session"
)

// IdentityToken is the JWT claim set used by the local identity provider.
//
// It embeds [jwt.RegisteredClaims] so the standard "sub", "iss", "exp" and
// "iat" claims are validated by the jwt library, and adds the identity
// specific claims on top.
type IdentityToken struct {
	jwt.RegisteredClaims

	// Email of the subject.
	Email string `json:"email,omitempty"`

	// Admin is the admin custom claim.
	Admin bool `json:"admin"`

	// Kind prevents a session cookie from being replayed as an ID token and
	// the other way around.
	Kind TokenKind `json:"kind"`
}

// ToClaims converts the token into the provider-neutral [Claims].
func (t IdentityToken) ToClaims() Claims {
	return Claims{
		UID:   t.Subject,
		Email: t.Email,
		Custom: map[string]any{
			"email":    t.Email,
			AdminClaim: t.Admin,
		},
	}
}
