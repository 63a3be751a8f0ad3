package connection

import (
	"fmt"
	"strings"
	"time"
)

// Config holds connection settings for the Weaviate server.
//
// It is intentionally minimal, readable, and easy to override from
// environment variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := connection.DefaultConfig()
//	cfg.Host = "weaviate.example.com:8080"
//	cfg.AuthToken = os.Getenv("WEAVIATE_AUTH_TOKEN")
//
// Example (builder style):
//
//	cfg := connection.FromHost("localhost:8080").
//	    WithScheme("https").
//	    WithReadTimeout(60 * time.Second)
type Config struct {
	// Scheme of the server URL, "http" or "https". Defaults to "http".
	Scheme string `yaml:"scheme" envconfig:"WEAVIATE_SCHEME"`

	// Host (and optional port) of the Weaviate server, e.g. "localhost:8080".
	Host string `yaml:"host" envconfig:"WEAVIATE_HOST"`

	// Version is the REST API version prefix. Defaults to "v1".
	Version string `yaml:"version" envconfig:"WEAVIATE_API_VERSION"`

	// AuthToken is an optional bearer token for secured deployments.
	AuthToken string `yaml:"auth_token" envconfig:"WEAVIATE_AUTH_TOKEN"`

	// ConnectTimeout bounds connection establishment. Defaults to 2s.
	ConnectTimeout time.Duration `yaml:"connect_timeout" envconfig:"WEAVIATE_CONNECT_TIMEOUT"`

	// ReadTimeout bounds a whole request/response exchange. Defaults to 20s.
	ReadTimeout time.Duration `yaml:"read_timeout" envconfig:"WEAVIATE_READ_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for a local instance.
func DefaultConfig() *Config {
	return &Config{
		Scheme:         "http",
		Host:           "localhost:8080",
		Version:        "v1",
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    20 * time.Second,
	}
}

// FromHost returns a default config pre-filled with a specific host.
func FromHost(host string) *Config {
	cfg := DefaultConfig()
	cfg.Host = host
	return cfg
}

// Builder-style helpers
func (c *Config) WithScheme(scheme string) *Config {
	c.Scheme = scheme
	return c
}

func (c *Config) WithAuthToken(token string) *Config {
	c.AuthToken = token
	return c
}

func (c *Config) WithConnectTimeout(d time.Duration) *Config {
	c.ConnectTimeout = d
	return c
}

func (c *Config) WithReadTimeout(d time.Duration) *Config {
	c.ReadTimeout = d
	return c
}

// Validate checks the config for values the client cannot work with.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("connection: host must not be empty")
	}
	if c.Scheme != "" && c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("connection: scheme must be http or https, got %q", c.Scheme)
	}
	if c.ConnectTimeout < 0 || c.ReadTimeout < 0 {
		return fmt.Errorf("connection: timeouts must not be negative")
	}
	return nil
}

// baseURL assembles the versioned API root, e.g. "http://localhost:8080/v1".
func (c *Config) baseURL() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = "http"
	}
	version := c.Version
	if version == "" {
		version = "v1"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, strings.TrimRight(c.Host, "/"), version)
}
