// Package pdf turns uploaded raster images into PDF documents and
// concatenates PDF documents into combined reports.
//
// All documents are handled as immutable byte slices. Every consumer reads
// through its own [bytes.Reader], so the same content can be uploaded and
// merged without copying or rewinding shared readers.
package pdf
