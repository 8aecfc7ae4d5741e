// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for external services the intake
// pipeline talks to.
//
// The primary abstraction is [Messenger], which pushes a finished document
// to a chat through a bot API. The package ships a Telegram Bot API
// implementation built on resty and a no-op implementation used when no bot
// is configured.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/messenger_mock.go -package=mock

// Messenger delivers documents to a fixed chat destination.
type Messenger interface {
	// SendDocument uploads doc to the configured chat. Every failure is
	// wrapped in [ErrDelivery].
	SendDocument(ctx context.Context, doc models.Document) error
}
