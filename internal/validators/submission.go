// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-intake/models"
)

// Field name constants accepted by [SubmissionValidator.Validate]. Document
// fields use their [models.FieldKey] value.
const (
	FieldFullName = "fullname"
)

// SubmissionValidator checks that a [models.Submission] names its submitter
// and carries every required document.
type SubmissionValidator struct{}

// NewSubmissionValidator returns a [Validator] for intake submissions.
func NewSubmissionValidator() Validator {
	return &SubmissionValidator{}
}

// Validate accepts models.Submission or *models.Submission. Without field
// names it checks the full name, every required document field and any
// optional document field that is present.
func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Submission:
		return v.validateSubmission(ctx, value, fields...)
	case *models.Submission:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSubmission(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// defaultSubmissionFields returns the full name, every required document
// field and each optional document field the submission actually carries.
func defaultSubmissionFields(submission models.Submission) []string {
	fields := make([]string, 0, len(models.DocumentFields)+1)
	fields = append(fields, FieldFullName)
	for _, f := range models.DocumentFields {
		if !f.IsRequired() && len(submission.Items(f)) == 0 {
			continue
		}
		fields = append(fields, f.String())
	}
	return fields
}

func (v *SubmissionValidator) validateSubmission(_ context.Context, submission models.Submission, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultSubmissionFields(submission)
	}

	for _, f := range fields {
		if f == FieldFullName {
			if strings.TrimSpace(submission.FullName) == "" {
				return ErrEmptyFullName
			}
			continue
		}

		field, ok := documentField(f)
		if !ok {
			return ErrUnknownField
		}
		if err := validateItems(field, submission.Items(field)); err != nil {
			return err
		}
	}

	return nil
}

func documentField(name string) (models.FieldKey, bool) {
	for _, f := range models.DocumentFields {
		if f.String() == name {
			return f, true
		}
	}
	return "", false
}

func validateItems(field models.FieldKey, items []models.UploadItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: %s", ErrMissingDocument, field)
	}
	if !field.IsList() && len(items) > 1 {
		return fmt.Errorf("%w: %s", ErrTooManyFiles, field)
	}
	for i, item := range items {
		if len(item.Content) == 0 {
			return fmt.Errorf("%w: %s at index %d", ErrEmptyDocument, field, i)
		}
	}
	return nil
}
