// Package config provides configuration loading, merging, and validation
// facilities for the document intake service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a local .env file is loaded first, if present)
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The entry point is [GetStructuredConfig].
package config
