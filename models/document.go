// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the request-scoped data types that flow through the
// document intake pipeline: uploaded items, converted PDFs, and the upload
// report returned to the caller.
package models

// FieldKey identifies one of the fixed document categories accepted by the
// intake endpoint. Its string value is used verbatim in object keys and in
// the JSON response.
type FieldKey string

const (
	FieldIDCard         FieldKey = "id_card"
	FieldEntranceExam   FieldKey = "entrance_exam"
	FieldTranscript     FieldKey = "transcript"
	FieldGradeReport    FieldKey = "grade_report"
	FieldDegree         FieldKey = "degree"
	FieldDocumentReport FieldKey = "document_report"
)

// DocumentFields lists the per-document fields in processing order.
// The merged report pages follow exactly this order.
var DocumentFields = []FieldKey{
	FieldIDCard,
	FieldEntranceExam,
	FieldTranscript,
	FieldGradeReport,
	FieldDegree,
}

// RequiredFields lists the fields a submission must carry. Degree is optional.
var RequiredFields = []FieldKey{
	FieldIDCard,
	FieldEntranceExam,
	FieldTranscript,
	FieldGradeReport,
}

// String returns the raw key.
func (f FieldKey) String() string {
	return string(f)
}

// IsRequired reports whether a submission must carry the field.
func (f FieldKey) IsRequired() bool {
	for _, r := range RequiredFields {
		if r == f {
			return true
		}
	}
	return false
}

// IsList reports whether the field accepts several files that are merged
// into one document before further processing.
func (f FieldKey) IsList() bool {
	return f == FieldGradeReport
}

// UploadItem is a single uploaded file before conversion.
type UploadItem struct {
	// Field is the document category the file was submitted under.
	Field FieldKey

	// FileName is the client-side file name, used for logging only.
	FileName string

	// Content holds the raw uploaded bytes. It is never mutated.
	Content []byte
}

// Submission is everything a single intake request carries.
type Submission struct {
	// FullName is the submitter's name exactly as entered.
	FullName string

	// Files maps each field to its uploaded items. Single-file fields hold
	// one item, the grade report may hold many, absent fields hold none.
	Files map[FieldKey][]UploadItem
}

// Items returns the uploaded items for field, or nil when the field is absent.
func (s Submission) Items(field FieldKey) []UploadItem {
	if s.Files == nil {
		return nil
	}
	return s.Files[field]
}

// PDFBlob is a complete PDF document owned by a field. Content is treated
// as immutable: consumers read it through their own readers and never
// modify shared state.
type PDFBlob struct {
	Field   FieldKey
	Content []byte
}

// Document is a file handed to the messaging sink.
type Document struct {
	FileName string
	Caption  string
	Content  []byte
}
