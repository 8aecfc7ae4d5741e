// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-intake/internal/validators"
	"github.com/MKhiriev/go-doc-intake/models"
)

// DocumentValidationService rejects incomplete submissions before the inner
// service converts anything.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewSubmissionValidator(),
	}
}

func (v *DocumentValidationService) UploadDocuments(ctx context.Context, submission models.Submission) (models.UploadReport, error) {
	if err := v.validator.Validate(ctx, submission); err != nil {
		return models.UploadReport{}, submissionError(err)
	}

	return v.inner.UploadDocuments(ctx, submission)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}

// submissionError classifies a validator error: absent fields are reported
// as [ErrMissingField], malformed ones as [ErrInvalidSubmission].
func submissionError(err error) error {
	if errors.Is(err, validators.ErrEmptyFullName) || errors.Is(err, validators.ErrMissingDocument) {
		return fmt.Errorf("%w: %w", ErrMissingField, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
}
