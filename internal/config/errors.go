// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive upload size limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDocumentsConfigs indicates a non-positive PDF resolution.
	ErrInvalidDocumentsConfigs = errors.New("invalid documents configuration")
	// ErrInvalidStorageConfigs indicates missing bucket, credentials, or
	// account id / endpoint.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidMessengerConfigs indicates a bot token without chat id (or
	// the other way round), or an empty API URL.
	ErrInvalidMessengerConfigs = errors.New("invalid messenger configuration")
)
