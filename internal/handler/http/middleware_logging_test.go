// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// requestWithLogger puts a buffer-backed zerolog.Logger into the request
// context the same way withTraceID does.
func requestWithLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/admin/crypto-orders",
			status: http.StatusOK,
			body:   "[]",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/api/admin/crypto-orders"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:   "POST 400",
			method: http.MethodPost,
			path:   "/api/auth/set-admin",
			status: http.StatusBadRequest,
			body:   `{"error":"Email is required"}`,
			wantContains: []string{
				`"method":"POST"`,
				`"status":400`,
				`"size":29`,
			},
		},
		{
			name:         "handler writes nothing",
			method:       http.MethodGet,
			path:         "/api/version/",
			wantContains: []string{`"status":200`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, requestWithLogger(tt.method, tt.path, &buf))

			for _, s := range tt.wantContains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, requestWithLogger(http.MethodGet, "/x", &buf))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "tea", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}
