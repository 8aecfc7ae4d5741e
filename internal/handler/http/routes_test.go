// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Routes(t *testing.T) {
	router := newTestHandler(&mockDocumentService{}, &mockAppInfoService{version: "test-version"}).Init()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "GET /version", method: http.MethodGet, path: "/version", wantStatus: http.StatusOK},
		{name: "PUT /version is hidden", method: http.MethodPut, path: "/version", wantStatus: http.StatusNotFound},
		{name: "GET upload is hidden", method: http.MethodGet, path: uploadDocumentsPath, wantStatus: http.StatusNotFound},
		{name: "DELETE upload is hidden", method: http.MethodDelete, path: uploadDocumentsPath, wantStatus: http.StatusNotFound},
		{name: "POST upload without form", method: http.MethodPost, path: uploadDocumentsPath, wantStatus: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/upload-documents", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader), "trace id header must be set")
		})
	}
}

func TestInit_UploadThroughRouter(t *testing.T) {
	svc := &mockDocumentService{}
	router := newTestHandler(svc, &mockAppInfoService{}).Init()

	body, ct := multipartBody(t, "Jane Doe", completeForm()...)
	req := httptest.NewRequest(http.MethodPost, uploadDocumentsPath, body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	assert.Equal(t, 1, svc.calls)
}

func TestInit_CORS(t *testing.T) {
	router := newTestHandler(&mockDocumentService{}, &mockAppInfoService{version: "v"}).Init()

	t.Run("simple request echoes origin with credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set("Origin", "https://apply.example.edu")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://apply.example.edu", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight is answered before routing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, uploadDocumentsPath, nil)
		req.Header.Set("Origin", "https://apply.example.edu")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Less(t, rec.Code, http.StatusMultipleChoices)
		assert.Equal(t, "https://apply.example.edu", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}
