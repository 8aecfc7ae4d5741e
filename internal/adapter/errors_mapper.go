// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// botResponse is the envelope every Bot API method answers with.
type botResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// mapBotResponse turns a Bot API answer into nil or an [ErrDelivery].
// A 2xx answer is only a success when the envelope does not say otherwise.
func mapBotResponse(resp *resty.Response) error {
	var envelope botResponse
	decodeErr := json.Unmarshal(resp.Body(), &envelope)

	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if decodeErr == nil && !envelope.OK {
			return fmt.Errorf("%w: api error %d: %s", ErrDelivery, envelope.ErrorCode, envelope.Description)
		}
		return nil
	}

	description := envelope.Description
	if description == "" {
		description = strings.TrimSpace(string(resp.Body()))
	}
	if description == "" {
		description = http.StatusText(status)
	}

	return fmt.Errorf("%w: http %d: %s", ErrDelivery, status, description)
}
