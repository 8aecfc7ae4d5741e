// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	ErrInvalidForm     = errors.New("invalid multipart form")
	ErrRequestTooLarge = errors.New("request body too large")
)
