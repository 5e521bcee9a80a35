// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/internal/utils"
	"github.com/MKhiriev/crypto-admin-api/models"
)

// sendCryptoEmails forwards an opaque order payload to the email service.
// The body must be a JSON object.
func (h *Handler) sendCryptoEmails(w http.ResponseWriter, r *http.Request) {
	var order models.CryptoOrderEmail
	if !decodeJSON(w, r, &order) {
		return
	}
	if order == nil {
		order = models.CryptoOrderEmail{}
	}

	if err := h.services.EmailService.SendCryptoOrderEmails(r.Context(), order); err != nil {
		writeServiceError(w, r, "Handler.sendCryptoEmails", err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

// sendTemplateEmail renders and sends a named template. template and
// user.email are required regardless of the other fields.
func (h *Handler) sendTemplateEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.TemplateEmailRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		writeServiceError(w, r, "Handler.sendTemplateEmail", err)
		return
	}

	receipt, err := h.services.EmailService.SendTemplateEmail(ctx, request)
	if err != nil {
		writeServiceError(w, r, "Handler.sendTemplateEmail", err)
		return
	}

	utils.WriteJSON(w, models.TemplateEmailResponse{Success: true, Data: receipt}, http.StatusOK)
}
