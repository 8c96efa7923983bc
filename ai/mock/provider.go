package mock

import "github.com/projecthog/synergy/ai"

// Provider is a test double for ai.Provider aggregating mock services.
type Provider struct {
	embedder  *Embedder
	generator *Generator
}

// NewProvider creates a provider backed by default mock services.
func NewProvider() *Provider {
	return &Provider{
		embedder:  NewEmbedder(),
		generator: NewGenerator(),
	}
}

// Embedder returns the mock embedding service as the ai interface.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Generator returns the mock generation service as the ai interface.
func (p *Provider) Generator() ai.Generator {
	return p.generator
}

// MockEmbedder returns the concrete mock embedder for assertions.
func (p *Provider) MockEmbedder() *Embedder {
	return p.embedder
}

// MockGenerator returns the concrete mock generator for assertions.
func (p *Provider) MockGenerator() *Generator {
	return p.generator
}

// Close is a no-op.
func (p *Provider) Close() error {
	return nil
}
