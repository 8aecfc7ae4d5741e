// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-intake/internal/config"
	"github.com/MKhiriev/go-doc-intake/internal/logger"
	"github.com/MKhiriev/go-doc-intake/internal/utils"
	"github.com/MKhiriev/go-doc-intake/models"
)

// maxCaptionLength is the Bot API limit for document captions.
const maxCaptionLength = 1024

type telegramMessenger struct {
	apiURL   string
	token    string
	chatID   string
	timeouts utils.ClientTimeouts

	logger *logger.Logger
}

// NewMessenger returns the Telegram Bot API messenger for cfg, or a no-op
// messenger when the bot is not configured.
func NewMessenger(cfg config.Messenger, logger *logger.Logger) Messenger {
	if !cfg.Enabled() {
		logger.Info().Msg("bot delivery disabled: no bot token or chat id configured")
		return NewNopMessenger()
	}

	logger.Info().Str("chat_id", cfg.ChatID).Msg("bot delivery enabled")

	return &telegramMessenger{
		apiURL: strings.TrimRight(cfg.APIURL, "/"),
		token:  cfg.BotToken,
		chatID: cfg.ChatID,
		timeouts: utils.ClientTimeouts{
			Connect:  cfg.ConnectTimeout,
			Write:    cfg.WriteTimeout,
			Read:     cfg.ReadTimeout,
			PoolWait: cfg.PoolTimeout,
		},
		logger: logger,
	}
}

// SendDocument posts doc through sendDocument as multipart form data.
//
// Each call builds its own HTTP client with the configured timeout budget
// and releases its connections before returning.
func (t *telegramMessenger) SendDocument(ctx context.Context, doc models.Document) error {
	client := utils.NewHTTPClient(t.timeouts)
	defer client.Close()

	resp, err := client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id": t.chatID,
			"caption": truncateCaption(doc.Caption),
		}).
		SetFileReader("document", doc.FileName, bytes.NewReader(doc.Content)).
		Post(t.sendDocumentURL())
	if err != nil {
		return fmt.Errorf("%w: send document request: %w", ErrDelivery, redactToken(err, t.token))
	}

	if err = mapBotResponse(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("chat_id", t.chatID).
		Str("file", doc.FileName).
		Msg("document delivered to chat")

	return nil
}

func (t *telegramMessenger) sendDocumentURL() string {
	return t.apiURL + "/bot" + t.token + "/sendDocument"
}

func truncateCaption(caption string) string {
	runes := []rune(caption)
	if len(runes) <= maxCaptionLength {
		return caption
	}
	return string(runes[:maxCaptionLength])
}

// redactToken hides the bot token in transport errors, which embed the
// request URL. The original error stays reachable through Unwrap.
func redactToken(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return &redactedError{err: err, token: token}
}

type redactedError struct {
	err   error
	token string
}

func (e *redactedError) Error() string {
	return strings.ReplaceAll(e.err.Error(), e.token, "<redacted>")
}

func (e *redactedError) Unwrap() error {
	return e.err
}
