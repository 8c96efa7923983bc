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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/projecthog/synergy/core"
	"github.com/projecthog/synergy/storage"
)

// LedgerRepository implements storage.LedgerRepository for BadgerDB.
type LedgerRepository struct {
	backend *Backend
}

var _ storage.LedgerRepository = (*LedgerRepository)(nil)

// NewLedgerRepository creates a new LedgerRepository.
//
// Returns storage.LedgerRepository interface to enforce abstraction.
func NewLedgerRepository(backend *Backend) (storage.LedgerRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &LedgerRepository{backend: backend}, nil
}

// RecordIndexed stores entries keyed by their ID, replacing any existing
// entry with the same ID. IDs are derived from document ids, so re-indexing
// a message overwrites its ledger entry rather than duplicating it.
func (r *LedgerRepository) RecordIndexed(ctx context.Context, entries ...*core.IndexEntry) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, entry := range entries {
			if entry.Id == 0 {
				entry.Id = core.IDFromContent(entry.DocumentID)
			}
			if entry.IndexedAt.IsZero() {
				entry.IndexedAt = now
			}
			if err := tx.Set(makeLedgerKey(entry.Id), storage.MarshalIndexEntry(entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEntry retrieves a ledger entry by ID.
func (r *LedgerRepository) GetEntry(ctx context.Context, id core.ID) (*core.IndexEntry, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var entry *core.IndexEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeLedgerKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			entry, unmarshalErr = storage.UnmarshalIndexEntry(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CountEntries returns the number of ledger entries.
func (r *LedgerRepository) CountEntries(ctx context.Context) (int, error) {
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = ledgerKeyPrefix()

		it := tx.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Close is a no-op; the backend owns the database lifecycle.
func (r *LedgerRepository) Close() error {
	return nil
}
