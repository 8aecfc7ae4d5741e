// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the intake pipeline.
//
// [DocumentService] turns a validated submission into per-field PDFs, a
// merged document report, storage objects and an optional chat delivery.
// Cross-cutting behavior such as input validation is layered on top with
// [DocumentServiceWrapper] decorators.
package service

import (
	"context"

	"github.com/MKhiriev/go-doc-intake/models"
)

// DocumentService processes one intake submission end to end.
type DocumentService interface {
	// UploadDocuments converts, stores, merges and delivers the documents of
	// submission. Per-field failures end up in the report; an error is
	// returned only when nothing could be stored.
	UploadDocuments(ctx context.Context, submission models.Submission) (models.UploadReport, error)
}

// AppInfoService exposes static application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}

// ImageConverter renders one uploaded image as a single-page PDF.
type ImageConverter interface {
	Convert(ctx context.Context, item models.UploadItem) (models.PDFBlob, error)
}

// PDFMerger concatenates PDFs in order, skipping unreadable members.
type PDFMerger interface {
	Merge(ctx context.Context, blobs []models.PDFBlob) ([]byte, error)
}
