// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides caller-side input validation for vault
// entries.
//
// The vault itself accepts empty labels, accounts and passwords; requiring
// them is a decision of the code that collects user input. Validators let
// such callers check a value, optionally restricted to a set of named
// fields, before handing it to a vault session.
package validators

import "context"

// Validator checks a value before it reaches a vault session.
type Validator interface {
	// Validate returns the first rule the value breaks. Field names limit
	// the check to those fields; none means every field of the type.
	// Unsupported types fail with ErrUnsupportedType.
	Validate(ctx context.Context, value any, fields ...string) error
}
