// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/object_storage_mock.go -package=mock

import "context"

// ObjectStorage writes finished PDF documents to a flat bucket namespace.
// Writing an existing key overwrites the object; there is no versioning.
type ObjectStorage interface {
	// PutPDF uploads content as "<name>.pdf" with content type
	// application/pdf and returns the object key.
	PutPDF(ctx context.Context, name string, content []byte) (string, error)
}
