// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/utils"
	"github.com/MKhiriev/go-doc-intake/models"
)

const (
	formFullName    = "fullname"
	multipartMemory = 32 << 20
)

// documentFormKeys maps multipart form keys to document fields, in the order
// files are collected. Both the historical client keys and the canonical
// field names are accepted.
var documentFormKeys = []struct {
	key   string
	field models.FieldKey
}{
	{"id_card", models.FieldIDCard},
	{"entrance", models.FieldEntranceExam},
	{"entrance_exam", models.FieldEntranceExam},
	{"transcript", models.FieldTranscript},
	{"gradereport", models.FieldGradeReport},
	{"gradereports", models.FieldGradeReport},
	{"grade_report", models.FieldGradeReport},
	{"degree", models.FieldDegree},
}

func (h *Handler) uploadDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	submission, err := readSubmission(r)
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadDocuments").Msg("error reading multipart form")
		writeUploadError(w, err)
		return
	}

	report, err := h.services.DocumentService.UploadDocuments(r.Context(), submission)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadDocuments").Str("fullname", submission.FullName).Msg("error uploading documents")
		writeUploadError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// readSubmission parses the multipart body. Files without a file name are
// ignored; deciding what is missing is left to validation.
func readSubmission(r *http.Request) (models.Submission, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.Submission{}, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
		}
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	submission := models.Submission{
		FullName: r.FormValue(formFullName),
		Files:    make(map[models.FieldKey][]models.UploadItem),
	}

	for _, formKey := range documentFormKeys {
		for _, header := range r.MultipartForm.File[formKey.key] {
			if header.Filename == "" {
				continue
			}

			content, err := readFormFile(header)
			if err != nil {
				return models.Submission{}, fmt.Errorf("%w: reading %q: %w", ErrInvalidForm, formKey.key, err)
			}

			submission.Files[formKey.field] = append(submission.Files[formKey.field], models.UploadItem{
				Field:    formKey.field,
				FileName: header.Filename,
				Content:  content,
			})
		}
	}

	return submission, nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
