// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-doc-intake/internal/logger"
)

// withRecovery turns a handler panic into a 500 carrying the usual
// {"detail": ...} body. http.ErrAbortHandler is re-raised so net/http can
// abort the response.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from handler panic")

			writeUploadError(w, fmt.Errorf("%v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
