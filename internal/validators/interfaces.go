// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the invariants of sync payloads before they
// reach storage: item size and algorithm limits, known item types and
// device ids that are safe to use as storage keys.
//
// Validation never mutates state. Callers reject the whole request on the
// first error.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
