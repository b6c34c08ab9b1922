// Package config handles configuration loading, parsing, and validation
// from environment variables, .env files and an optional YAML config file.
// Environment variables use the HOLOCRON_ prefix; PORT and DATABASE_URL are
// also honoured for platform deployments that inject them directly.
package config
