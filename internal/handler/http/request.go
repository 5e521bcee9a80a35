// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/internal/app"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/utils"
)

// decodeJSON decodes the request body into v. On failure it answers 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError logs err once and answers with the status and message
// mapped from it.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := responseFromError(err)
	logger.FromRequest(r).Err(err).Str("func", funcName).Int("status", status).Send()
	utils.WriteError(w, message, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
