// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-doc-intake/internal/service"
	"github.com/MKhiriev/go-doc-intake/internal/utils"
	"github.com/MKhiriev/go-doc-intake/models"
)

const uploadErrorPrefix = "File upload failed due to a server error: "

var errorStatusMap = map[error]int{
	ErrInvalidForm:     http.StatusBadRequest,
	ErrRequestTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrMissingField:        http.StatusBadRequest,
	service.ErrInvalidSubmission:   http.StatusBadRequest,
	service.ErrNoDocumentsUploaded: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func writeUploadError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: uploadErrorPrefix + err.Error()}, statusFromError(err))
}
