// Copyright 2026 Project Hog
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"strings"

	"github.com/projecthog/synergy/core"
)

// Config holds configuration for AI service clients. It is constructed once
// at process start and passed by reference into client constructors; no
// client reads the environment on its own.
type Config struct {
	// APIKey authenticates against the embedding and chat services.
	// Required.
	APIKey string

	// BaseURL is the base URL of the OpenAI-compatible API.
	// Default: "https://api.openai.com/v1"
	BaseURL string

	// EmbeddingModel is the model identifier used for text embeddings.
	// Default: "text-embedding-3-small"
	EmbeddingModel string

	// ChatModel is the model identifier used for answer generation.
	// Default: "gpt-5.1"
	ChatModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIKey sets the API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithChatModel sets the chat model identifier.
func WithChatModel(model string) ConfigOption {
	return func(c *Config) {
		c.ChatModel = model
	}
}

// DefaultConfig returns a Config with defaults for the hosted OpenAI API.
// The API key has no default and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://api.openai.com/v1",
		EmbeddingModel: "text-embedding-3-small",
		ChatModel:      "gpt-5.1",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form. It strips a
// trailing slash from the base URL so request paths can be appended safely.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

// Validate checks that the configuration is valid and complete. A missing
// API key is reported as a *core.ConfigError so callers can fail fast before
// any network call is attempted.
func (c *Config) Validate() error {
	c.Normalize()

	if c.APIKey == "" {
		return &core.ConfigError{Setting: "OpenAI API key"}
	}
	if c.BaseURL == "" {
		return &core.ConfigError{Setting: "OpenAI base URL"}
	}
	if c.EmbeddingModel == "" {
		return &core.ConfigError{Setting: "embedding model"}
	}
	if c.ChatModel == "" {
		return &core.ConfigError{Setting: "chat model"}
	}
	return nil
}
