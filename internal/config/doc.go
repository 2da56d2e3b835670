// Package config loads and validates the application configuration.
//
// Values are merged from environment variables, command-line flags, and an
// optional JSON file; explicit sources win over built-in defaults. The JWT
// signing key is required at startup unless development mode is enabled.
package config
