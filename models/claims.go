// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AdminClaim is the custom claim that marks an identity as an administrator.
const AdminClaim = "admin"

// Claims is the decoded content of a verified ID token or session cookie.
type Claims struct {
	// UID is the subject of the token.
	UID string `json:"uid"`

	// Email is taken from the "email" claim when the provider sets it.
	Email string `json:"email,omitempty"`

	// Custom holds every claim carried by the token, including provider
	// defaults and custom claims such as "admin".
	Custom map[string]any `json:"claims,omitempty"`
}

// IsAdmin reports whether the "admin" claim is the boolean true.
// Any other value, including the string "true", is not an admin.
func (c Claims) IsAdmin() bool {
	admin, ok := c.Custom[AdminClaim].(bool)
	return ok && admin
}
