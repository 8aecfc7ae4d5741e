// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-doc-intake/internal/adapter"
	"github.com/MKhiriev/go-doc-intake/internal/config"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/pdf"
	"github.com/MKhiriev/go-doc-intake/internal/store"
)

type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

// NewServices wires the document pipeline. The document service is wrapped
// with submission validation.
func NewServices(storages *store.Storages, messenger adapter.Messenger, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	documentService := NewDocumentService(
		pdf.NewImageConverter(cfg.Documents.DPI),
		pdf.NewMerger(),
		storages.ObjectStorage,
		messenger,
		logger,
	)

	return &Services{
		DocumentService: NewDocumentValidationService().Wrap(documentService),
		AppInfoService:  appInfoService,
	}, nil
}
