// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request payloads before any external
// collaborator is called.
//
// A Validator accepts a value together with an optional list of field names;
// when the list is empty every field the value type defines is checked, in a
// fixed order, and the first violation is returned.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
