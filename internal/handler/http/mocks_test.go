// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-doc-intake/internal/config"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/service"
	"github.com/MKhiriev/go-doc-intake/models"
)

// ---- Mock: DocumentService ----

type mockDocumentService struct {
	uploadFn func(ctx context.Context, s models.Submission) (models.UploadReport, error)

	calls int
	got   models.Submission
}

func (m *mockDocumentService) UploadDocuments(ctx context.Context, s models.Submission) (models.UploadReport, error) {
	m.calls++
	m.got = s
	if m.uploadFn != nil {
		return m.uploadFn(ctx, s)
	}
	return models.UploadReport{Status: models.StatusSuccess, FullName: s.FullName}, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestHandler builds a Handler with nop logging and a 1 MiB upload limit.
func newTestHandler(docs service.DocumentService, info service.AppInfoService) *Handler {
	return NewHandler(
		&service.Services{DocumentService: docs, AppInfoService: info},
		config.Server{MaxUploadSize: 1 << 20},
		logger.Nop(),
	)
}
