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


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/projecthog/synergy/core"
)

// MarshalIndexEntry serializes an IndexEntry to bytes.
func MarshalIndexEntry(entry *core.IndexEntry) []byte {
	indexedAt := entry.IndexedAt.UnixMicro()
	size := varint.Uint64.Size(uint64(entry.Id)) +
		ord.String.Size(entry.DocumentID) +
		ord.String.Size(entry.ChannelID) +
		ord.String.Size(entry.TS) +
		varint.Int.Size(entry.Chunks) +
		varint.Int64.Size(indexedAt)

	bs := make([]byte, size)
	n := varint.Uint64.Marshal(uint64(entry.Id), bs)
	n += ord.String.Marshal(entry.DocumentID, bs[n:])
	n += ord.String.Marshal(entry.ChannelID, bs[n:])
	n += ord.String.Marshal(entry.TS, bs[n:])
	n += varint.Int.Marshal(entry.Chunks, bs[n:])
	varint.Int64.Marshal(indexedAt, bs[n:])
	return bs
}

// UnmarshalIndexEntry deserializes an IndexEntry from bytes.
func UnmarshalIndexEntry(bs []byte) (*core.IndexEntry, error) {
	entry := &core.IndexEntry{}

	id, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	entry.Id = core.ID(id)

	var m int
	if entry.DocumentID, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += m
	if entry.ChannelID, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += m
	if entry.TS, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += m
	if entry.Chunks, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += m

	indexedAt, _, err := varint.Int64.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	entry.IndexedAt = time.UnixMicro(indexedAt).UTC()
	return entry, nil
}

// MarshalCheckpoint serializes a Checkpoint to bytes.
func MarshalCheckpoint(checkpoint *core.Checkpoint) []byte {
	updatedAt := checkpoint.UpdatedAt.UnixMicro()
	size := ord.String.Size(checkpoint.ChannelID) +
		ord.String.Size(checkpoint.LastTS) +
		varint.Int64.Size(updatedAt)

	bs := make([]byte, size)
	n := ord.String.Marshal(checkpoint.ChannelID, bs)
	n += ord.String.Marshal(checkpoint.LastTS, bs[n:])
	varint.Int64.Marshal(updatedAt, bs[n:])
	return bs
}

// UnmarshalCheckpoint deserializes a Checkpoint from bytes.
func UnmarshalCheckpoint(bs []byte) (*core.Checkpoint, error) {
	checkpoint := &core.Checkpoint{}

	var n, m int
	var err error
	if checkpoint.ChannelID, n, err = ord.String.Unmarshal(bs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if checkpoint.LastTS, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	n += m

	updatedAt, _, err := varint.Int64.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	checkpoint.UpdatedAt = time.UnixMicro(updatedAt).UTC()
	return checkpoint, nil
}
