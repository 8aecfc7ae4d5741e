// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-intake/internal/adapter"
	"github.com/MKhiriev/go-doc-intake/internal/config"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/mock"
	"github.com/MKhiriev/go-doc-intake/internal/store"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{ObjectStorage: mock.NewMockObjectStorage(ctrl)}

	services, err := NewServices(storages, adapter.NewNopMessenger(), config.StructuredConfig{App: config.App{Version: "1.0.0"}}, logger.Nop())
	require.NoError(t, err)

	_, wrapped := services.DocumentService.(*DocumentValidationService)
	assert.True(t, wrapped)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_NoVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, adapter.NewNopMessenger(), config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
