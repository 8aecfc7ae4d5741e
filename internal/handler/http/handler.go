// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-doc-intake/internal/config"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/service"
)

type Handler struct {
	services      *service.Services
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = config.DefaultMaxUploadSize
	}

	logger.Info().Int64("max_upload_size", maxUploadSize).Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}
