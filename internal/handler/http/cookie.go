// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/models"
)

const sessionCookieName = "session"

// newSessionCookie builds the HTTP-only session cookie for session.
func (h *Handler) newSessionCookie(session models.Session) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Cookie,
		Path:     "/",
		MaxAge:   int(session.ExpiresIn.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
