package badger

import (
	"context"
	"testing"
	"time"

	"github.com/projecthog/synergy/core"
	"github.com/projecthog/synergy/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestLedgerRepository_RecordAndGet(t *testing.T) {
	ledger, err := NewLedgerRepository(setupBackend(t))
	require.NoError(t, err)

	ctx := context.Background()
	entry := &core.IndexEntry{
		DocumentID: "slack:C1:100.001",
		ChannelID:  "C1",
		TS:         "100.001",
		Chunks:     1,
	}
	require.NoError(t, ledger.RecordIndexed(ctx, entry))

	// ID and IndexedAt get populated on write.
	assert.Equal(t, core.IDFromContent("slack:C1:100.001"), entry.Id)
	assert.False(t, entry.IndexedAt.IsZero())

	got, err := ledger.GetEntry(ctx, entry.Id)
	require.NoError(t, err)
	assert.Equal(t, "slack:C1:100.001", got.DocumentID)
	assert.Equal(t, "C1", got.ChannelID)
	assert.Equal(t, 1, got.Chunks)
}

func TestLedgerRepository_GetMissing(t *testing.T) {
	ledger, err := NewLedgerRepository(setupBackend(t))
	require.NoError(t, err)

	_, err = ledger.GetEntry(context.Background(), core.IDFromContent("nope"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLedgerRepository_ReindexOverwrites(t *testing.T) {
	ledger, err := NewLedgerRepository(setupBackend(t))
	require.NoError(t, err)

	ctx := context.Background()
	first := &core.IndexEntry{DocumentID: "slack:C1:1.0", ChannelID: "C1", TS: "1.0", Chunks: 1}
	second := &core.IndexEntry{DocumentID: "slack:C1:1.0", ChannelID: "C1", TS: "1.0", Chunks: 3}
	require.NoError(t, ledger.RecordIndexed(ctx, first))
	require.NoError(t, ledger.RecordIndexed(ctx, second))

	count, err := ledger.CountEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := ledger.GetEntry(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Chunks)
}

func TestLedgerRepository_CountEntries(t *testing.T) {
	ledger, err := NewLedgerRepository(setupBackend(t))
	require.NoError(t, err)

	ctx := context.Background()
	for _, ts := range []string{"1.0", "2.0", "3.0"} {
		entry := &core.IndexEntry{DocumentID: "slack:C1:" + ts, ChannelID: "C1", TS: ts, Chunks: 1}
		require.NoError(t, ledger.RecordIndexed(ctx, entry))
	}

	count, err := ledger.CountEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCheckpointRepository_SaveAndLoad(t *testing.T) {
	checkpoints := NewCheckpointRepository(setupBackend(t))

	ctx := context.Background()
	missing, err := checkpoints.LoadCheckpoint(ctx, "C1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{ChannelID: "C1", LastTS: "100.001"}))

	got, err := checkpoints.LoadCheckpoint(ctx, "C1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "100.001", got.LastTS)
	assert.WithinDuration(t, time.Now().UTC(), got.UpdatedAt, time.Minute)
}

func TestCheckpointRepository_List(t *testing.T) {
	checkpoints := NewCheckpointRepository(setupBackend(t))

	ctx := context.Background()
	require.NoError(t, checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{ChannelID: "C1", LastTS: "1.0"}))
	require.NoError(t, checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{ChannelID: "C2", LastTS: "2.0"}))

	all, err := checkpoints.ListCheckpoints(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
