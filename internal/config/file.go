// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// fileConfig is the on-disk layout of the optional config file.
type fileConfig struct {
	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress       string   `json:"http_address" yaml:"http_address"`
		ReadHeaderTimeout Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
		MaxUploadSize     int64    `json:"max_upload_size" yaml:"max_upload_size"`
	} `json:"server" yaml:"server"`

	Documents struct {
		DPI int `json:"pdf_dpi" yaml:"pdf_dpi"`
	} `json:"documents" yaml:"documents"`

	Storage struct {
		AccountID       string `json:"account_id" yaml:"account_id"`
		AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key"`
		Bucket          string `json:"bucket" yaml:"bucket"`
		Endpoint        string `json:"endpoint" yaml:"endpoint"`
		Region          string `json:"region" yaml:"region"`
		UsePathStyle    bool   `json:"use_path_style" yaml:"use_path_style"`
		MaxAttempts     int    `json:"max_attempts" yaml:"max_attempts"`
	} `json:"storage" yaml:"storage"`

	Messenger struct {
		BotToken       string   `json:"bot_token" yaml:"bot_token"`
		ChatID         string   `json:"chat_id" yaml:"chat_id"`
		APIURL         string   `json:"api_url" yaml:"api_url"`
		ConnectTimeout Duration `json:"connect_timeout" yaml:"connect_timeout"`
		ReadTimeout    Duration `json:"read_timeout" yaml:"read_timeout"`
		WriteTimeout   Duration `json:"write_timeout" yaml:"write_timeout"`
		PoolTimeout    Duration `json:"pool_timeout" yaml:"pool_timeout"`
	} `json:"messenger" yaml:"messenger"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  fc.App.Version,
			LogLevel: fc.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:       fc.Server.HTTPAddress,
			ReadHeaderTimeout: time.Duration(fc.Server.ReadHeaderTimeout),
			MaxUploadSize:     fc.Server.MaxUploadSize,
		},
		Documents: Documents{DPI: fc.Documents.DPI},
		Storage: Storage{
			AccountID:       fc.Storage.AccountID,
			AccessKeyID:     fc.Storage.AccessKeyID,
			SecretAccessKey: fc.Storage.SecretAccessKey,
			Bucket:          fc.Storage.Bucket,
			Endpoint:        fc.Storage.Endpoint,
			Region:          fc.Storage.Region,
			UsePathStyle:    fc.Storage.UsePathStyle,
			MaxAttempts:     fc.Storage.MaxAttempts,
		},
		Messenger: Messenger{
			BotToken:       fc.Messenger.BotToken,
			ChatID:         fc.Messenger.ChatID,
			APIURL:         fc.Messenger.APIURL,
			ConnectTimeout: time.Duration(fc.Messenger.ConnectTimeout),
			ReadTimeout:    time.Duration(fc.Messenger.ReadTimeout),
			WriteTimeout:   time.Duration(fc.Messenger.WriteTimeout),
			PoolTimeout:    time.Duration(fc.Messenger.PoolTimeout),
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// and from plain nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (d *Duration) UnmarshalYAML(b []byte) error {
	return d.UnmarshalJSON(yamlScalarAsJSON(b))
}

// MarshalJSON encodes the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// yamlScalarAsJSON turns an unquoted YAML scalar into a JSON value: numbers
// stay numbers, anything else becomes a JSON string.
func yamlScalarAsJSON(b []byte) []byte {
	s := strings.Trim(strings.TrimSpace(string(b)), `"'`)
	if _, err := json.Number(s).Float64(); err == nil {
		return []byte(s)
	}
	quoted, _ := json.Marshal(s)
	return quoted
}
