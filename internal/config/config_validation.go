// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the merged [StructuredConfig] is usable before the
// server starts. All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Documents.DPI <= 0 {
		errs = append(errs, ErrInvalidDocumentsConfigs)
	}

	s := cfg.Storage
	if s.Bucket == "" || s.AccessKeyID == "" || s.SecretAccessKey == "" ||
		(s.AccountID == "" && s.Endpoint == "") {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	m := cfg.Messenger
	if (m.BotToken == "") != (m.ChatID == "") {
		errs = append(errs, ErrInvalidMessengerConfigs)
	}
	if m.Enabled() && m.APIURL == "" {
		errs = append(errs, ErrInvalidMessengerConfigs)
	}

	return errors.Join(errs...)
}
