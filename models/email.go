// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// EmailMessage is a fully rendered email ready to be handed to a sender.
type EmailMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// EmailReceipt is what the delivery provider returns for an accepted message.
type EmailReceipt struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
}

// EmailUser is the recipient description sent by the frontend. Only "email"
// is required; every other key is passed to the template as-is.
type EmailUser map[string]any

// Email returns the trimmed "email" value, or "" when absent or not a string.
func (u EmailUser) Email() string {
	return stringField(u, "email")
}

// TemplateEmailRequest is the body of POST /api/send-template-email.
type TemplateEmailRequest struct {
	// Template is the name of an embedded email template.
	Template string `json:"template"`

	// User describes the recipient.
	User EmailUser `json:"user"`

	// TestValues are extra template values; they override keys from User.
	TestValues map[string]any `json:"testValues"`
}

// TemplateEmailResponse is returned after a templated email was accepted.
type TemplateEmailResponse struct {
	Success bool         `json:"success"`
	Data    EmailReceipt `json:"data"`
}

// CryptoOrderEmail is the order payload forwarded by the checkout page.
// Its shape belongs to the frontend, so it is kept as a generic object and
// only a few well-known keys are read.
type CryptoOrderEmail map[string]any

// CustomerEmail returns the customer's address from "email" or
// "customerEmail", whichever is set first.
func (o CryptoOrderEmail) CustomerEmail() string {
	if email := stringField(o, "email"); email != "" {
		return email
	}
	return stringField(o, "customerEmail")
}

// OrderNumber returns "orderNumber" or "orderId" when present.
func (o CryptoOrderEmail) OrderNumber() string {
	if number := stringField(o, "orderNumber"); number != "" {
		return number
	}
	return stringField(o, "orderId")
}

func stringField(m map[string]any, key string) string {
	v, ok := m[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
