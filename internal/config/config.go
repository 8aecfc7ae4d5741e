// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-intake/internal/pdf"
)

// StructuredConfig is the top-level configuration container of the
// document intake service. It is built once at process start and passed by
// value or pointer into the components that need it; nothing reads the
// environment after startup.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Storage and Messenger fields use the variable names of the existing
// deployment without a prefix.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP settings.
	Server Server `envPrefix:"SERVER_"`

	// Documents holds conversion settings.
	Documents Documents `envPrefix:"DOCUMENTS_"`

	// Storage holds the S3-compatible object storage settings.
	Storage Storage

	// Messenger holds the chat bot delivery settings. Delivery is disabled
	// when no bot token is configured.
	Messenger Messenger

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and limit settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadHeaderTimeout bounds reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// MaxUploadSize is the maximum accepted multipart body size in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Documents holds image-to-PDF conversion settings.
type Documents struct {
	// DPI is the resolution hint used to size PDF pages from image pixels.
	// Env: DOCUMENTS_PDF_DPI
	DPI int `env:"PDF_DPI"`
}

// Storage holds the object storage connection settings.
type Storage struct {
	// AccountID is the storage account identifier the endpoint is derived from.
	AccountID string `env:"CLOUDFLARE_ACCOUNT_ID"`

	// AccessKeyID and SecretAccessKey are the static access-key credentials.
	AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`

	// Bucket is the destination bucket of every uploaded PDF.
	Bucket string `env:"BUCKET_NAME"`

	// Endpoint overrides the derived endpoint URL (e.g. for MinIO).
	Endpoint string `env:"R2_ENDPOINT"`

	// Region is the signing region; "auto" for R2.
	Region string `env:"R2_REGION"`

	// UsePathStyle switches to path-style addressing (bucket in the path).
	UsePathStyle bool `env:"R2_USE_PATH_STYLE"`

	// MaxAttempts is the maximum number of attempts per upload, retries included.
	MaxAttempts int `env:"R2_MAX_ATTEMPTS"`
}

// EndpointURL returns Endpoint when set, otherwise the R2 endpoint of AccountID.
func (s Storage) EndpointURL() string {
	if s.Endpoint != "" {
		return s.Endpoint
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.AccountID)
}

// Messenger holds the bot API settings and its timeout budget.
type Messenger struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `env:"TELEGRAM_CHAT_ID"`

	// APIURL is the bot API base URL.
	APIURL string `env:"TELEGRAM_API_URL"`

	ConnectTimeout time.Duration `env:"TELEGRAM_CONNECT_TIMEOUT"`
	ReadTimeout    time.Duration `env:"TELEGRAM_READ_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TELEGRAM_WRITE_TIMEOUT"`
	PoolTimeout    time.Duration `env:"TELEGRAM_POOL_TIMEOUT"`
}

// Enabled reports whether merged reports should be delivered to the bot.
func (m Messenger) Enabled() bool {
	return m.BotToken != "" && m.ChatID != ""
}

// Default values applied before any other source.
const (
	DefaultVersion           = "dev"
	DefaultHTTPAddress       = "0.0.0.0:8000"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultMaxUploadSize     = 64 << 20
	DefaultRegion            = "auto"
	DefaultMaxAttempts       = 3
	DefaultBotAPIURL         = "https://api.telegram.org"
	DefaultConnectTimeout    = 30 * time.Second
	DefaultReadTimeout       = 120 * time.Second
	DefaultWriteTimeout      = 120 * time.Second
	DefaultPoolTimeout       = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: "debug",
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			MaxUploadSize:     DefaultMaxUploadSize,
		},
		Documents: Documents{DPI: pdf.DefaultDPI},
		Storage: Storage{
			Region:      DefaultRegion,
			MaxAttempts: DefaultMaxAttempts,
		},
		Messenger: Messenger{
			APIURL:         DefaultBotAPIURL,
			ConnectTimeout: DefaultConnectTimeout,
			ReadTimeout:    DefaultReadTimeout,
			WriteTimeout:   DefaultWriteTimeout,
			PoolTimeout:    DefaultPoolTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Defaults
//  2. Environment variables (.env loaded first when present)
//  3. Command-line flags from args
//  4. Config file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}
