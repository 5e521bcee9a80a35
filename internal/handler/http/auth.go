// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/internal/app"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/utils"
	"github.com/MKhiriev/crypto-admin-api/models"
)

const bootstrapKeyHeader = "X-Admin-Bootstrap-Key"

// createSession exchanges an admin ID token for an HTTP-only session cookie.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.CreateSessionRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		writeServiceError(w, r, "Handler.createSession", err)
		return
	}

	session, err := h.services.AuthService.CreateSession(ctx, request.IDToken)
	if err != nil {
		writeServiceError(w, r, "Handler.createSession", err)
		return
	}

	http.SetCookie(w, h.newSessionCookie(session))
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// setAdmin grants the admin claim to the account registered with the given
// email. Failures after validation answer 500 with the error text.
func (h *Handler) setAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.AuthService.CheckBootstrapKey(ctx, r.Header.Get(bootstrapKeyHeader)); err != nil {
		writeServiceError(w, r, "Handler.setAdmin", err)
		return
	}

	var request models.SetAdminRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		writeServiceError(w, r, "Handler.setAdmin", err)
		return
	}

	customToken, err := h.services.AuthService.SetAdmin(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("func", "Handler.setAdmin").Str("email", request.Email).Msg("error setting admin claim")
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.SetAdminResponse{
		Success:     true,
		Message:     fmt.Sprintf(app.MsgAdminClaimSet, request.Email),
		CustomToken: customToken,
	}, http.StatusOK)
}

// verifySession reports whether a session cookie belongs to an admin. A valid
// non-admin session is answered with isAdmin=false, not an error.
func (h *Handler) verifySession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.VerifySessionRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		writeServiceError(w, r, "Handler.verifySession", err)
		return
	}

	claims, err := h.services.AuthService.VerifySession(ctx, request.Session)
	if err != nil {
		writeServiceError(w, r, "Handler.verifySession", err)
		return
	}

	utils.WriteJSON(w, models.VerifySessionResponse{IsAdmin: claims.IsAdmin()}, http.StatusOK)
}
