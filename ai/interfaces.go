package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// One outbound call per invocation; callers needing several texts
	// embedded issue their own concurrent calls. Implementations do not
	// retry; retry policy, if any, belongs to the caller.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Generator produces a natural-language answer for a question given a block
// of retrieved context. Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Answer generates an answer to question. contextBlock is the already
	// formatted retrieval context, or a marker stating that nothing was
	// retrieved; the generator never receives an empty context block.
	Answer(ctx context.Context, question, contextBlock string) (string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Generator returns the answer generation service.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	Close() error
}
