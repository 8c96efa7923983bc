package vectorstore

import (
	"strings"

	"github.com/projecthog/synergy/core"
)

// Config holds configuration for vector index clients. Like ai.Config, it is
// built once at process start and handed to constructors; clients never read
// the environment themselves.
type Config struct {
	// APIKey authenticates against the vector store. Required.
	APIKey string

	// Namespace is the named partition holding this deployment's rows.
	// Default: "synergy-slack"
	Namespace string

	// BaseURL is the base URL of the vector store API.
	// Default: "https://api.turbopuffer.com"
	BaseURL string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIKey sets the API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithNamespace sets the namespace.
func WithNamespace(namespace string) ConfigOption {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// DefaultConfig returns a Config with defaults for the hosted store.
// The API key has no default and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		Namespace: "synergy-slack",
		BaseURL:   "https://api.turbopuffer.com",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. Options setting an empty value fall back to the default.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultConfig().Namespace
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	return cfg
}

// Validate checks that the configuration is complete. Missing values are
// reported as *core.ConfigError before any network call is attempted.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")

	if c.APIKey == "" {
		return &core.ConfigError{Setting: "vector store API key"}
	}
	if c.Namespace == "" {
		return &core.ConfigError{Setting: "vector store namespace"}
	}
	return nil
}
