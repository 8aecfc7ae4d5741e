// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrObjectUpload is returned when the object store rejects an upload or
// cannot be reached. Callers should use [errors.Is] to match it.
var ErrObjectUpload = errors.New("object upload failed")
