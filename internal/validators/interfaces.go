// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks intake submissions before any conversion work
// starts.
//
// [Validator] takes an arbitrary value and an optional list of field names
// that restricts which rules run. Services receive validators through
// constructor injection and never depend on a concrete type.
package validators

import "context"

// Validator validates a value, optionally limited to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
