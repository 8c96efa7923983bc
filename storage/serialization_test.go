package storage

import (
	"testing"
	"time"

	"github.com/projecthog/synergy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexEntryRoundTrip(t *testing.T) {
	entry := &core.IndexEntry{
		Id:         core.IDFromContent("slack:C1:100.001"),
		DocumentID: "slack:C1:100.001",
		ChannelID:  "C1",
		TS:         "100.001",
		Chunks:     3,
		IndexedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	decoded, err := UnmarshalIndexEntry(MarshalIndexEntry(entry))
	require.NoError(t, err)
	assert.Equal(t, entry, decoded)
}

func TestIndexEntryTruncatedData(t *testing.T) {
	entry := &core.IndexEntry{DocumentID: "slack:C1:1.0", ChannelID: "C1", TS: "1.0", Chunks: 1}
	bs := MarshalIndexEntry(entry)

	_, err := UnmarshalIndexEntry(bs[:len(bs)/2])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestCheckpointRoundTrip(t *testing.T) {
	checkpoint := &core.Checkpoint{
		ChannelID: "C042",
		LastTS:    "1712345678.000200",
		UpdatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	decoded, err := UnmarshalCheckpoint(MarshalCheckpoint(checkpoint))
	require.NoError(t, err)
	assert.Equal(t, checkpoint, decoded)
}
