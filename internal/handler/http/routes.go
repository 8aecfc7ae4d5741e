// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const uploadDocumentsPath = "/upload-ducuments"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(withCORS())
	router.Use(h.withTraceID, h.withLogging, h.withRecovery)

	router.Post(uploadDocumentsPath, h.uploadDocuments)
	router.Get("/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS allows every origin with credentials. The origin is echoed back
// instead of "*" so browsers accept credentialed requests.
func withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, _ string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	})
}
