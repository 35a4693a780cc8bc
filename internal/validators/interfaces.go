// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// A Validator accepts any supported model (value or pointer) and returns an
// error wrapping ErrInvalidInput when the payload breaks a rule. Handlers
// translate such errors to 400 Bad Request.
package validators

import "context"

// Validator validates arbitrary input values. Optional field names restrict
// validation to those fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
