package ingestion

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrIndexRequired is returned when a vector index is not provided.
	ErrIndexRequired = errors.New("vector index required")

	// ErrDirectoryRequired is returned when backlog indexing is started
	// without an author directory.
	ErrDirectoryRequired = errors.New("author directory required")
)
