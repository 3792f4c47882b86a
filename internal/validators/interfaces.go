// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

// Package validators checks registration form input before it reaches the
// user registry: required fields, email and phone shape, password length
// and confirmation, supported languages.
//
// The Validator interface takes arbitrary values and optional field names,
// so a caller can validate one form step at a time (pass the step struct)
// or a single field while the user is still typing (pass its name).
// Validation failures are sentinel errors matched with errors.Is.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
