// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/internal/utils"
	"github.com/MKhiriev/crypto-admin-api/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ping(r.Context()); err != nil {
		writeServiceError(w, r, "Handler.health", err)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
