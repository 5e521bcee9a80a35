// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx email API response into one of the email
// provider sentinel errors.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch {
	case resp.StatusCode() == http.StatusBadRequest,
		resp.StatusCode() == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case resp.StatusCode() == http.StatusUnauthorized,
		resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrProviderUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapFirebaseUserError converts a Firebase user management error.
func mapFirebaseUserError(err error) error {
	if auth.IsUserNotFound(err) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrIdentity, err)
}

// mapFirebaseSessionError converts a session cookie verification error.
func mapFirebaseSessionError(err error) error {
	if auth.IsSessionCookieRevoked(err) {
		return fmt.Errorf("%w: %w", ErrSessionRevoked, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidSession, err)
}
