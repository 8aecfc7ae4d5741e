// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the intake service.
//
// It wires the chi router, CORS, request tracing and access logging, turns
// multipart submissions into [models.Submission] values and maps service
// errors to status codes.
package http
