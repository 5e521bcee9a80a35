// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/internal/app"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/utils"
)

// adminSession is an HTTP middleware that admits only requests carrying a
// valid "session" cookie whose claims include admin == true.
//
// It answers 401 when the cookie is missing or fails verification (including
// revocation) and 403 when the session is valid but not an admin. On success
// the verified claims are stored in the request context under
// [utils.ClaimsCtxKey].
func (h *Handler) adminSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Err(ErrNoSessionCookie).Str("func", "Handler.adminSession").Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.VerifySession(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Str("func", "Handler.adminSession").Msg("session verification failed")
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if !claims.IsAdmin() {
			log.Warn().Str("func", "Handler.adminSession").Str("uid", claims.UID).Msg("non-admin session")
			utils.WriteError(w, app.MsgForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}
