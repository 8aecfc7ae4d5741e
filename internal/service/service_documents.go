// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-intake/internal/adapter"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/store"
	"github.com/MKhiriev/go-doc-intake/internal/utils"
	"github.com/MKhiriev/go-doc-intake/models"
)

const (
	messageSuccess        = "Image processed and saved successfully."
	messagePartialSuccess = "Some documents could not be processed."
	reportCaptionPrefix   = "Document report: "
)

type documentService struct {
	converter ImageConverter
	merger    PDFMerger
	storage   store.ObjectStorage
	messenger adapter.Messenger

	logger *logger.Logger
}

func NewDocumentService(
	converter ImageConverter,
	merger PDFMerger,
	storage store.ObjectStorage,
	messenger adapter.Messenger,
	logger *logger.Logger,
) DocumentService {
	return &documentService{
		converter: converter,
		merger:    merger,
		storage:   storage,
		messenger: messenger,
		logger:    logger,
	}
}

// UploadDocuments walks the fields in processing order. Every converted
// field PDF joins the report accumulator even when its own upload fails, so
// the merged report always reflects what could be rendered.
func (s *documentService) UploadDocuments(ctx context.Context, submission models.Submission) (models.UploadReport, error) {
	log := logger.FromContext(ctx)
	prefix := utils.SanitizeFullName(submission.FullName)

	report := models.UploadReport{
		FullName: submission.FullName,
		Uploaded: []models.UploadResult{},
	}
	accumulator := make([]models.PDFBlob, 0, len(models.DocumentFields))

	for _, field := range models.DocumentFields {
		if err := ctx.Err(); err != nil {
			return models.UploadReport{}, fmt.Errorf("submission processing interrupted: %w", err)
		}

		items := submission.Items(field)
		if len(items) == 0 {
			continue
		}

		blob, failures := s.fieldPDF(ctx, field, items)
		report.Failed = append(report.Failed, failures...)
		if blob == nil {
			continue
		}

		accumulator = append(accumulator, *blob)
		s.upload(ctx, &report, field, utils.DocumentName(prefix, field), blob.Content)
	}

	if len(accumulator) > 0 {
		merged, err := s.merger.Merge(ctx, accumulator)
		if err != nil {
			log.Error().Err(err).Msg("error merging document report")
			report.Failed = append(report.Failed, models.FieldFailure{
				Field: models.FieldDocumentReport,
				Error: err.Error(),
			})
		} else {
			s.upload(ctx, &report, models.FieldDocumentReport, utils.ReportName(prefix), merged)
			report.Delivered = s.deliver(ctx, submission.FullName, prefix, merged)
		}
	}

	if len(report.Uploaded) == 0 {
		return models.UploadReport{}, fmt.Errorf("%w: %s", ErrNoDocumentsUploaded, describeFailures(report.Failed))
	}

	report.Status, report.Message = models.StatusSuccess, messageSuccess
	if len(report.Failed) > 0 {
		report.Status, report.Message = models.StatusPartialSuccess, messagePartialSuccess
	}

	log.Info().
		Str("status", report.Status).
		Int("uploaded", len(report.Uploaded)).
		Int("failed", len(report.Failed)).
		Bool("delivered", report.Delivered).
		Msg("submission processed")

	return report, nil
}

// fieldPDF converts the items of one field. List fields have their pages
// merged into a single PDF. A nil blob means nothing usable was produced.
func (s *documentService) fieldPDF(ctx context.Context, field models.FieldKey, items []models.UploadItem) (*models.PDFBlob, []models.FieldFailure) {
	log := logger.FromContext(ctx)

	var failures []models.FieldFailure
	pages := make([]models.PDFBlob, 0, len(items))

	for _, item := range items {
		page, err := s.converter.Convert(ctx, item)
		if err != nil {
			log.Error().Err(err).Str("field", field.String()).Str("file", item.FileName).Msg("error converting document")
			failures = append(failures, models.FieldFailure{Field: field, Error: failureMessage(item.FileName, err)})
			continue
		}
		pages = append(pages, page)
	}

	switch len(pages) {
	case 0:
		return nil, failures
	case 1:
		blob := models.PDFBlob{Field: field, Content: pages[0].Content}
		return &blob, failures
	}

	merged, err := s.merger.Merge(ctx, pages)
	if err != nil {
		log.Error().Err(err).Str("field", field.String()).Msg("error merging field pages")
		return nil, append(failures, models.FieldFailure{Field: field, Error: err.Error()})
	}

	return &models.PDFBlob{Field: field, Content: merged}, failures
}

func (s *documentService) upload(ctx context.Context, report *models.UploadReport, field models.FieldKey, name string, content []byte) {
	key, err := s.storage.PutPDF(ctx, name, content)
	if err != nil {
		report.Failed = append(report.Failed, models.FieldFailure{Field: field, Error: err.Error()})
		return
	}

	report.Uploaded = append(report.Uploaded, models.UploadResult{Field: field, SavedAs: key})
}

// deliver sends the merged report to the chat. Delivery problems never fail
// the submission.
func (s *documentService) deliver(ctx context.Context, fullName, prefix string, merged []byte) bool {
	err := s.messenger.SendDocument(ctx, models.Document{
		FileName: utils.PDFObjectKey(utils.ReportName(prefix)),
		Caption:  reportCaptionPrefix + fullName,
		Content:  merged,
	})
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("error delivering document report")
		return false
	}
	return true
}

func failureMessage(fileName string, err error) string {
	if fileName == "" {
		return err.Error()
	}
	return fileName + ": " + err.Error()
}

func describeFailures(failures []models.FieldFailure) string {
	if len(failures) == 0 {
		return "nothing to process"
	}

	parts := make([]string, 0, len(failures))
	for _, f := range failures {
		parts = append(parts, f.Field.String()+": "+f.Error)
	}
	return strings.Join(parts, "; ")
}
