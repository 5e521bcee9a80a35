// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/crypto-admin-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldIDToken targets the identity token of a create-session request.
	FieldIDToken = "id_token"

	// FieldEmail targets the email of a set-admin request.
	FieldEmail = "email"

	// FieldSession targets the session cookie of a verify-session request.
	FieldSession = "session"

	// FieldTemplate targets the template name of a template email request.
	FieldTemplate = "template"

	// FieldUserEmail targets user.email of a template email request.
	FieldUserEmail = "user.email"
)

// RequestValidator implements Validator for the auth and email request bodies.
// Both value and pointer forms are accepted.
type RequestValidator struct{}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the type-specific method.
// Nil pointers are reported as ErrUnsupportedType.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSessionRequest:
		return v.validateCreateSession(value, fields...)
	case *models.CreateSessionRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateSession(*value, fields...)

	case models.SetAdminRequest:
		return v.validateSetAdmin(value, fields...)
	case *models.SetAdminRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSetAdmin(*value, fields...)

	case models.VerifySessionRequest:
		return v.validateVerifySession(value, fields...)
	case *models.VerifySessionRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateVerifySession(*value, fields...)

	case models.TemplateEmailRequest:
		return v.validateTemplateEmail(value, fields...)
	case *models.TemplateEmailRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTemplateEmail(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCreateSession(request models.CreateSessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDToken}
	}

	for _, f := range fields {
		switch f {
		case FieldIDToken:
			if isBlank(request.IDToken) {
				return ErrIDTokenRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSetAdmin(request models.SetAdminRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrEmailRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateVerifySession(request models.VerifySessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSession}
	}

	for _, f := range fields {
		switch f {
		case FieldSession:
			if isBlank(request.Session) {
				return ErrSessionRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTemplateEmail(request models.TemplateEmailRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTemplate, FieldUserEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldTemplate:
			if isBlank(request.Template) {
				return ErrTemplateRequired
			}
		case FieldUserEmail:
			if request.User.Email() == "" {
				return ErrUserEmailRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
