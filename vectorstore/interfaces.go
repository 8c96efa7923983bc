package vectorstore

import (
	"context"

	"github.com/projecthog/synergy/core"
)

// Index is a namespace-scoped vector index reached over the network.
// Implementations must be thread-safe for concurrent use.
type Index interface {
	// Upsert writes a batch of rows with insert-or-replace-by-id
	// semantics: writing the same row id twice leaves a single row, so a
	// retried batch converges to the same end state.
	Upsert(ctx context.Context, rows []core.VectorRow) error

	// Query returns up to topK rows ranked by similarity to vector,
	// nearest first, with all stored attributes included. A store response
	// with no rows is an empty result, not an error.
	Query(ctx context.Context, vector []float32, topK int) ([]core.RetrievedRow, error)
}
