// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrMissingField          = errors.New("missing required field")
	ErrInvalidSubmission     = errors.New("invalid submission")
	ErrNoDocumentsUploaded   = errors.New("no documents were uploaded")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
