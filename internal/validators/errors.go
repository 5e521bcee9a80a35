// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrIDTokenRequired   = errors.New("ID token is required")
	ErrEmailRequired     = errors.New("email is required")
	ErrSessionRequired   = errors.New("session is required")
	ErrTemplateRequired  = errors.New("template is required")
	ErrUserEmailRequired = errors.New("user email is required")
)
