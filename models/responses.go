// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the uniform JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the body of endpoints that only acknowledge success.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
