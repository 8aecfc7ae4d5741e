// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrDelivery is returned when the bot API rejects a document or cannot be
// reached within the timeout budget.
var ErrDelivery = errors.New("document delivery failed")
