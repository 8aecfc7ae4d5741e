// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Upload report statuses.
const (
	StatusSuccess        = "success"
	StatusPartialSuccess = "partial_success"
)

// UploadResult describes one object written to storage.
type UploadResult struct {
	// Field is the document category, or "document_report" for the merged file.
	Field FieldKey `json:"field"`

	// SavedAs is the destination object key.
	SavedAs string `json:"saved_as"`
}

// FieldFailure records a field that could not be converted or stored.
// The rest of the submission is still processed.
type FieldFailure struct {
	Field FieldKey `json:"field"`
	Error string   `json:"error"`
}

// UploadReport is the success body of the intake endpoint.
type UploadReport struct {
	// Status is "success" when every field went through, otherwise
	// "partial_success".
	Status string `json:"status"`

	// Message is a short human-readable summary.
	Message string `json:"message"`

	// FullName echoes the submitted name.
	FullName string `json:"fullname"`

	// Uploaded lists stored objects in processing order, the merged report last.
	Uploaded []UploadResult `json:"uploaded"`

	// Failed lists the fields that did not make it to storage.
	Failed []FieldFailure `json:"failed,omitempty"`

	// Delivered reports whether the merged report reached the chat.
	Delivered bool `json:"delivered"`
}

// ErrorResponse is the body returned when the request as a whole fails.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
