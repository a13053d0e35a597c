// Package config loads and validates the application configuration from
// environment variables (TODO_ prefix) and an optional config file.
package config
