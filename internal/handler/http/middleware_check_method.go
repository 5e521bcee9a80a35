// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/crypto-admin-api/internal/app"
	"github.com/MKhiriev/crypto-admin-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405, a request whose method is not registered for the
// matched path is answered with a JSON 404, hiding the route from callers
// using an unsupported method. Requests whose method is registered are passed
// back to router.
//
// Only exact route patterns are compared; parameterised segments are not
// expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	}
}
