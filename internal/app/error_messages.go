// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// crypto-admin-api handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" field of JSON response bodies or into log entries. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIDTokenRequired is returned by create-session when idToken is empty.
	MsgIDTokenRequired = "ID token is required"

	// MsgEmailRequired is returned by set-admin when email is empty.
	MsgEmailRequired = "Email is required"

	// MsgSessionRequired is returned by verify-session when session is empty.
	MsgSessionRequired = "Session is required"

	// MsgTemplateRequired is returned by send-template-email when template is
	// empty.
	MsgTemplateRequired = "Template is required"

	// MsgUserEmailRequired is returned by send-template-email when user.email
	// is empty.
	MsgUserEmailRequired = "User email is required"

	// MsgUnauthorized is returned when a token or session cookie is missing,
	// invalid or expired.
	MsgUnauthorized = "Unauthorized"

	// MsgForbidden is returned when a valid identity lacks the admin claim.
	MsgForbidden = "Forbidden: admin access required"

	// MsgAdminClaimSet is the set-admin success message; %s is the email.
	MsgAdminClaimSet = "Admin claim set for %s"

	// MsgFailedToFetchOrders is returned when the order query fails.
	MsgFailedToFetchOrders = "Failed to fetch orders"

	// MsgFailedToSendEmail is returned when rendering or delivering an email
	// fails.
	MsgFailedToSendEmail = "Failed to send email"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"

	// MsgServiceUnavailable is returned by the health check when the database
	// cannot be reached.
	MsgServiceUnavailable = "service unavailable"
)
