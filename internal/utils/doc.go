// Package utils provides small helpers shared across the service: JSON
// response writing, object-key naming, trace-id generation and the
// outbound HTTP client factory.
package utils
