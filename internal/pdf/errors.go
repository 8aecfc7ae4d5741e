// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pdf

import "errors"

var (
	// ErrConversion is returned when an uploaded image cannot be decoded or
	// re-encoded as a PDF page.
	ErrConversion = errors.New("image conversion failed")

	// ErrMergeMember marks a single unreadable document inside a merge batch.
	// Such members are skipped; the error is only logged.
	ErrMergeMember = errors.New("unreadable merge member")

	// ErrNoReadableMembers is returned by Merge when not a single member of
	// the batch could be read.
	ErrNoReadableMembers = errors.New("no readable documents to merge")
)
