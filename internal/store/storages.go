// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the persistence backends of the service. The only
// persistent state is the PDF objects written to S3-compatible storage.
package store

import (
	"github.com/MKhiriev/go-doc-intake/internal/config"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
)

// Storages groups the storage backends handed to the service layer.
type Storages struct {
	ObjectStorage ObjectStorage
}

// NewStorages builds every storage backend from configuration.
func NewStorages(cfg config.Storage, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		ObjectStorage: NewS3ObjectStorage(cfg, logger),
	}
}
