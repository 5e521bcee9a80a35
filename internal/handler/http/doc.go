// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the service.
//
// It wires the chi router, the request tracing and access logging middleware,
// the admin session gate, and the handlers for sessions, crypto orders and
// email delivery. Every error response is a JSON object of the form
// {"error": "<message>"}.
package http
