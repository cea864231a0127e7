package telemetry

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds OpenTelemetry exporter settings.
// Telemetry is disabled when Endpoint is empty.
type Config struct {
	Endpoint       string `toml:"endpoint"`
	Headers        string `toml:"headers"`
	ServiceName    string `toml:"service_name"`
	ServiceVersion string `toml:"service_version"`
}

// Env maps telemetry config fields to environment variable names.
type Env struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// Enabled reports whether an exporter endpoint is configured.
func (c *Config) Enabled() bool {
	return c.Endpoint != ""
}

// Finalize applies defaults, environment overrides, and validates the result.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.Headers != "" {
		c.Headers = overlay.Headers
	}
	if overlay.ServiceName != "" {
		c.ServiceName = overlay.ServiceName
	}
	if overlay.ServiceVersion != "" {
		c.ServiceVersion = overlay.ServiceVersion
	}
}

// HeaderMap parses Headers ("k1=v1,k2=v2") into a map.
// Malformed pairs are skipped.
func (c *Config) HeaderMap() map[string]string {
	headers := make(map[string]string)
	if c.Headers == "" {
		return headers
	}
	for pair := range strings.SplitSeq(c.Headers, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			headers[k] = strings.TrimSpace(v)
		}
	}
	return headers
}

func (c *Config) loadDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = "promptmatch"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, dst *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	set(env.Endpoint, &c.Endpoint)
	set(env.Headers, &c.Headers)
	set(env.ServiceName, &c.ServiceName)
	set(env.ServiceVersion, &c.ServiceVersion)
}

func (c *Config) validate() error {
	if !c.Enabled() {
		return nil
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid telemetry endpoint %q: must be an absolute URL", c.Endpoint)
	}
	c.Endpoint = strings.TrimSuffix(c.Endpoint, "/")
	return nil
}
