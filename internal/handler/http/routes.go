// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version/", h.getServerVersion)

		r.Post("/api/auth/create-session", h.createSession)
		r.Post("/api/auth/set-admin", h.setAdmin)
		r.Post("/api/auth/verify-session", h.verifySession)

		r.Post("/api/send-crypto-emails", h.sendCryptoEmails)
		r.Post("/api/send-template-email", h.sendTemplateEmail)
	})

	// routes behind an admin session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.adminSession)
		r.Get("/api/admin/crypto-orders", h.listCryptoOrders)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
