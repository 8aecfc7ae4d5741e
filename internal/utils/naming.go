// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/MKhiriev/go-doc-intake/models"
)

const (
	pdfExtension     = ".pdf"
	reportNameSuffix = "doc_report"
)

// SanitizeFullName turns a submitter's name into an object key prefix:
// lowercase, spaces replaced with underscores. "Jane Doe" becomes "jane_doe".
func SanitizeFullName(fullName string) string {
	return strings.ToLower(strings.ReplaceAll(fullName, " ", "_"))
}

// DocumentName returns the extension-less object name for a field,
// e.g. "jane_doe_id_card".
func DocumentName(prefix string, field models.FieldKey) string {
	return prefix + "_" + field.String()
}

// ReportName returns the extension-less object name of the merged report,
// e.g. "jane_doe_doc_report".
func ReportName(prefix string) string {
	return prefix + "_" + reportNameSuffix
}

// PDFObjectKey appends the ".pdf" extension to a logical object name.
func PDFObjectKey(name string) string {
	return name + pdfExtension
}
