// Package config handles configuration loading, parsing, and validation
// from environment variables, .env files and an optional config.yaml. It
// provides type-safe access to the settings the server needs while keeping
// configuration details separate from request handling.
package config
