package storage

import (
	"context"

	"github.com/projecthog/synergy/core"
)

// LedgerRepository records which documents have been written to the vector
// store. Entries are bookkeeping only — losing them never loses data, since
// re-indexing is idempotent.
type LedgerRepository interface {
	// RecordIndexed stores one entry per indexed document, replacing any
	// existing entry with the same id.
	RecordIndexed(ctx context.Context, entries ...*core.IndexEntry) error

	// GetEntry retrieves a ledger entry by id.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id core.ID) (*core.IndexEntry, error)

	// CountEntries returns the number of ledger entries.
	CountEntries(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}

// CheckpointRepository tracks backlog indexing progress per channel.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a channel.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a channel.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, channelID string) (*core.Checkpoint, error)

	// ListCheckpoints returns every stored checkpoint.
	ListCheckpoints(ctx context.Context) ([]*core.Checkpoint, error)
}
