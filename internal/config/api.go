package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/promptmatch/pkg/formatting"
	"github.com/JaimeStill/promptmatch/pkg/middleware"
	"github.com/JaimeStill/promptmatch/pkg/openapi"
)

const EnvAPIMaxBodySize = "PROMPTMATCH_API_MAX_BODY_SIZE"

var corsEnv = &middleware.CORSEnv{
	Enabled:          "PROMPTMATCH_CORS_ENABLED",
	Origins:          "PROMPTMATCH_CORS_ORIGINS",
	AllowedMethods:   "PROMPTMATCH_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "PROMPTMATCH_CORS_ALLOWED_HEADERS",
	AllowCredentials: "PROMPTMATCH_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "PROMPTMATCH_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "PROMPTMATCH_OPENAPI_TITLE",
	Description: "PROMPTMATCH_OPENAPI_DESCRIPTION",
}

// APIConfig holds request limits, CORS, and OpenAPI settings.
type APIConfig struct {
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	OpenAPI     openapi.Config        `toml:"openapi"`

	maxBodyBytes int64
}

// MaxBodySizeBytes returns the parsed request body limit.
// Valid only after Finalize.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	return c.maxBodyBytes
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *APIConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("invalid max_body_size: must be positive")
	}
	c.maxBodyBytes = size
	return nil
}
