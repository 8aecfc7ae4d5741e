// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	p := writeTempConfig(t, "config.json", `{
		"app": {"version": "1.0.0", "log_level": "info"},
		"server": {"http_address": "localhost:8080", "read_header_timeout": "15s", "max_upload_size": 1024},
		"documents": {"pdf_dpi": 72},
		"storage": {
			"account_id": "acc", "access_key_id": "key", "secret_access_key": "secret",
			"bucket": "docs", "endpoint": "http://minio:9000", "region": "us-east-1",
			"use_path_style": true, "max_attempts": 4
		},
		"messenger": {
			"bot_token": "tok", "chat_id": "42", "api_url": "http://bot",
			"connect_timeout": "1s", "read_timeout": "2s", "write_timeout": "3s", "pool_timeout": 4000000000
		}
	}`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, int64(1024), cfg.Server.MaxUploadSize)
	assert.Equal(t, 72, cfg.Documents.DPI)
	assert.Equal(t, "docs", cfg.Storage.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.Storage.Endpoint)
	assert.True(t, cfg.Storage.UsePathStyle)
	assert.Equal(t, 4, cfg.Storage.MaxAttempts)
	assert.Equal(t, "tok", cfg.Messenger.BotToken)
	assert.Equal(t, time.Second, cfg.Messenger.ConnectTimeout)
	assert.Equal(t, 3*time.Second, cfg.Messenger.WriteTimeout)
	assert.Equal(t, 4*time.Second, cfg.Messenger.PoolTimeout)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeTempConfig(t, "config.yml", `
app:
  version: 2.0.0
server:
  http_address: "127.0.0.1:9000"
  read_header_timeout: 20s
storage:
  bucket: yaml-bucket
  account_id: acc
messenger:
  bot_token: tok
  chat_id: "7"
  read_timeout: "90s"
`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "yaml-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "7", cfg.Messenger.ChatID)
	assert.Equal(t, 90*time.Second, cfg.Messenger.ReadTimeout)
}

func TestParseFile_MalformedJSON(t *testing.T) {
	p := writeTempConfig(t, "bad.json", "{not valid json")

	_, err := parseFile(p)

	assert.Error(t, err)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := parseFile("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "number", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}
