// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ClientTimeouts is the timeout budget of an outbound HTTP client.
type ClientTimeouts struct {
	// Connect bounds dialing and the TLS handshake.
	Connect time.Duration
	// Write bounds sending the request, body included.
	Write time.Duration
	// Read bounds waiting for and reading the response.
	Read time.Duration
	// PoolWait bounds waiting for a free connection.
	PoolWait time.Duration
}

// Total returns the overall per-request deadline derived from the budget.
func (t ClientTimeouts) Total() time.Duration {
	return t.PoolWait + t.Connect + t.Write + t.Read
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own transport and
// connection pool, configured from timeouts. Zero durations leave the
// corresponding bound unset.
//
// Callers that use a client for a single exchange should call Close so the
// pooled connections are released.
func NewHTTPClient(timeouts ClientTimeouts) *HTTPClient {
	dialer := &net.Dialer{Timeout: timeouts.Connect}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   timeouts.Connect,
		ResponseHeaderTimeout: timeouts.Write + timeouts.Read,
		MaxIdleConnsPerHost:   1,
		ForceAttemptHTTP2:     true,
	}

	client := resty.New().
		SetTransport(transport).
		SetTimeout(timeouts.Total())

	return &HTTPClient{Client: client}
}

// Close releases idle connections held by the client.
func (c *HTTPClient) Close() {
	c.GetClient().CloseIdleConnections()
}
