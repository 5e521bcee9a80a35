// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/internal/app"
	"github.com/MKhiriev/crypto-admin-api/internal/service"
	"github.com/MKhiriev/crypto-admin-api/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	validators.ErrIDTokenRequired:   {http.StatusBadRequest, app.MsgIDTokenRequired},
	validators.ErrEmailRequired:     {http.StatusBadRequest, app.MsgEmailRequired},
	validators.ErrSessionRequired:   {http.StatusBadRequest, app.MsgSessionRequired},
	validators.ErrTemplateRequired:  {http.StatusBadRequest, app.MsgTemplateRequired},
	validators.ErrUserEmailRequired: {http.StatusBadRequest, app.MsgUserEmailRequired},
	validators.ErrUnsupportedType:   {http.StatusBadRequest, app.MsgInvalidDataProvided},

	service.ErrInvalidIDToken:        {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrSessionCreationFailed: {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrInvalidSession:        {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrInvalidBootstrapKey:   {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrNotAdmin:              {http.StatusForbidden, app.MsgForbidden},

	service.ErrListingOrders:       {http.StatusInternalServerError, app.MsgFailedToFetchOrders},
	service.ErrRenderingEmail:      {http.StatusInternalServerError, app.MsgFailedToSendEmail},
	service.ErrSendingEmail:        {http.StatusInternalServerError, app.MsgFailedToSendEmail},
	service.ErrNoRecipients:        {http.StatusInternalServerError, app.MsgFailedToSendEmail},
	service.ErrDatabaseUnavailable: {http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

// responseFromError returns the status code and client message for err.
// Unknown errors map to 500 with a generic message.
func responseFromError(err error) (int, string) {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
