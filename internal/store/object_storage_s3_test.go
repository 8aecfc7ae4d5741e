// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-intake/internal/config"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
)

// fakeBucket is a minimal S3 PUT endpoint that keeps the last body per path.
type fakeBucket struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	status       int
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
		status:       http.StatusOK,
	}
}

func (f *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.status != http.StatusOK {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
		return
	}

	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.objects[r.URL.Path] = body
	f.contentTypes[r.URL.Path] = r.Header.Get("Content-Type")
	f.mu.Unlock()

	w.Header().Set("ETag", `"etag"`)
	w.WriteHeader(http.StatusOK)
}

func newTestStorage(t *testing.T, endpoint string) ObjectStorage {
	t.Helper()
	return NewS3ObjectStorage(config.Storage{
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Bucket:          "docs",
		Endpoint:        endpoint,
		Region:          "auto",
		UsePathStyle:    true,
		MaxAttempts:     1,
	}, logger.Nop())
}

func TestS3ObjectStorage_PutPDF_Success(t *testing.T) {
	bucket := newFakeBucket()
	srv := httptest.NewServer(bucket)
	defer srv.Close()

	storage := newTestStorage(t, srv.URL)
	content := []byte("%PDF-1.7 test content")

	key, err := storage.PutPDF(context.Background(), "jane_doe_id_card", content)

	require.NoError(t, err)
	assert.Equal(t, "jane_doe_id_card.pdf", key)
	assert.Equal(t, content, bucket.objects["/docs/jane_doe_id_card.pdf"])
	assert.Equal(t, "application/pdf", bucket.contentTypes["/docs/jane_doe_id_card.pdf"])
}

func TestS3ObjectStorage_PutPDF_OverwritesSameKey(t *testing.T) {
	bucket := newFakeBucket()
	srv := httptest.NewServer(bucket)
	defer srv.Close()

	storage := newTestStorage(t, srv.URL)

	_, err := storage.PutPDF(context.Background(), "jane_doe_doc_report", []byte("first"))
	require.NoError(t, err)
	_, err = storage.PutPDF(context.Background(), "jane_doe_doc_report", []byte("second"))
	require.NoError(t, err)

	assert.Len(t, bucket.objects, 1)
	assert.Equal(t, []byte("second"), bucket.objects["/docs/jane_doe_doc_report.pdf"])
}

func TestS3ObjectStorage_PutPDF_RemoteError(t *testing.T) {
	bucket := newFakeBucket()
	bucket.status = http.StatusForbidden
	srv := httptest.NewServer(bucket)
	defer srv.Close()

	storage := newTestStorage(t, srv.URL)

	key, err := storage.PutPDF(context.Background(), "jane_doe_id_card", []byte("pdf"))

	assert.Empty(t, key)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrObjectUpload)
	assert.Contains(t, err.Error(), "docs/jane_doe_id_card.pdf")
}

func TestS3ObjectStorage_PutPDF_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	storage := newTestStorage(t, endpoint)

	_, err := storage.PutPDF(context.Background(), "jane_doe_id_card", []byte("pdf"))

	assert.ErrorIs(t, err, ErrObjectUpload)
}

func TestNewStorages(t *testing.T) {
	storages := NewStorages(config.Storage{AccountID: "acc", Bucket: "docs", Region: "auto"}, logger.Nop())

	require.NotNil(t, storages)
	assert.NotNil(t, storages.ObjectStorage)
}
