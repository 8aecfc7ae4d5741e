// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName   = errors.New("fullname is required")
	ErrMissingDocument = errors.New("required document is missing")
	ErrEmptyDocument   = errors.New("uploaded document is empty")
	ErrTooManyFiles    = errors.New("too many files for a single-file field")
)
