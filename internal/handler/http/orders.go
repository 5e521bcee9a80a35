// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/utils"
)

// listCryptoOrders answers with every crypto order, newest first. It is
// mounted behind adminSession.
func (h *Handler) listCryptoOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.services.OrderService.ListCryptoOrders(ctx)
	if err != nil {
		writeServiceError(w, r, "Handler.listCryptoOrders", err)
		return
	}

	if claims, ok := utils.GetClaimsFromContext(ctx); ok {
		logger.FromRequest(r).Debug().Str("uid", claims.UID).Int("count", len(orders)).Msg("crypto orders listed")
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}
