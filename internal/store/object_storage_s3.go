// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/MKhiriev/go-doc-intake/internal/config"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/utils"
)

const pdfContentType = "application/pdf"

// s3ObjectStorage is the [ObjectStorage] implementation for any
// S3-compatible endpoint (Cloudflare R2 in production, MinIO locally).
type s3ObjectStorage struct {
	client *s3.Client
	bucket string

	logger *logger.Logger
}

// NewS3ObjectStorage returns an [ObjectStorage] writing to cfg.Bucket at
// cfg.EndpointURL() with static access-key credentials. The SDK's standard
// retryer is used with cfg.MaxAttempts attempts per upload.
func NewS3ObjectStorage(cfg config.Storage, logger *logger.Logger) ObjectStorage {
	client := s3.New(s3.Options{
		Region:                     cfg.Region,
		BaseEndpoint:               aws.String(cfg.EndpointURL()),
		Credentials:                credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		UsePathStyle:               cfg.UsePathStyle,
		RetryMaxAttempts:           cfg.MaxAttempts,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})

	logger.Info().
		Str("endpoint", cfg.EndpointURL()).
		Str("bucket", cfg.Bucket).
		Msg("object storage client created")

	return &s3ObjectStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}
}

func (s *s3ObjectStorage) PutPDF(ctx context.Context, name string, content []byte) (string, error) {
	log := logger.FromContext(ctx)
	key := utils.PDFObjectKey(name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(pdfContentType),
	})
	if err != nil {
		event := log.Error().Err(err).Str("bucket", s.bucket).Str("key", key)
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			event = event.Str("code", apiErr.ErrorCode())
		}
		event.Msg("error uploading pdf to object storage")

		return "", fmt.Errorf("%w: %s/%s: %w", ErrObjectUpload, s.bucket, key, err)
	}

	log.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Int("size", len(content)).
		Msg("pdf uploaded to object storage")

	return key, nil
}
