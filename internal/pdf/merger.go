// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/models"
)

// Merger concatenates PDF documents.
type Merger struct{}

// NewMerger returns a ready Merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge returns one PDF holding all pages of blobs, in slice order.
//
// Members are appended one at a time. A member that cannot be read or
// appended is logged with [ErrMergeMember] and skipped; the rest of the
// batch is still merged. If no member is readable, [ErrNoReadableMembers]
// is returned.
func (m *Merger) Merge(ctx context.Context, blobs []models.PDFBlob) ([]byte, error) {
	log := logger.FromContext(ctx)

	var merged []byte
	for i, blob := range blobs {
		var err error
		if merged == nil {
			_, err = PageCount(blob.Content)
			if err == nil {
				merged = blob.Content
			}
		} else {
			var next []byte
			next, err = appendDocument(merged, blob.Content)
			if err == nil {
				merged = next
			}
		}

		if err != nil {
			log.Warn().
				Err(fmt.Errorf("%w: %w", ErrMergeMember, err)).
				Int("index", i).
				Str("field", blob.Field.String()).
				Msg("skipping document during merge")
		}
	}

	if merged == nil {
		return nil, ErrNoReadableMembers
	}

	return merged, nil
}

// appendDocument returns a new document with the pages of next appended to
// base. Neither input is modified.
func appendDocument(base, next []byte) ([]byte, error) {
	var out bytes.Buffer
	readers := []io.ReadSeeker{newReader(base), newReader(next)}
	if err := api.MergeRaw(readers, &out, false, newConfiguration()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func newReader(content []byte) *bytes.Reader {
	return bytes.NewReader(content)
}
