// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-intake/models"
)

type nopMessenger struct{}

// NewNopMessenger returns a [Messenger] that accepts every document and
// sends nothing.
func NewNopMessenger() Messenger {
	return nopMessenger{}
}

func (nopMessenger) SendDocument(context.Context, models.Document) error {
	return nil
}
