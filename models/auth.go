// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CreateSessionRequest is the body of POST /api/auth/create-session.
type CreateSessionRequest struct {
	IDToken string `json:"idToken"`
}

// SetAdminRequest is the body of POST /api/auth/set-admin.
type SetAdminRequest struct {
	Email string `json:"email"`
}

// SetAdminResponse is returned after the admin claim has been granted.
type SetAdminResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	CustomToken string `json:"customToken"`
}

// VerifySessionRequest is the body of POST /api/auth/verify-session.
type VerifySessionRequest struct {
	Session string `json:"session"`
}

// VerifySessionResponse reports whether a session belongs to an admin.
type VerifySessionResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// Session is a minted session cookie value together with its lifetime.
type Session struct {
	Cookie    string
	ExpiresIn time.Duration
}
