package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExportMessages(t *testing.T) {
	path := writeTempFile(t, "messages.json", `[
		{"type": "message", "user": "U1", "text": "hello", "ts": "1.0", "team": "T1"},
		{"type": "message", "subtype": "channel_join", "user": "U2", "text": "joined", "ts": "2.0"},
		{"type": "reaction_added", "user": "U3", "ts": "3.0"},
		{"type": "message", "user": "U2", "text": "world", "ts": "4.0"}
	]`)

	msgs, err := loadExportMessages(path, "C1", "general")
	require.NoError(t, err)
	require.Len(t, msgs, 2, "subtyped and non-message entries are dropped")

	assert.Equal(t, "hello", msgs[0].Text)
	assert.Equal(t, "U1", msgs[0].UserID)
	assert.Equal(t, "C1", msgs[0].ChannelID)
	assert.Equal(t, "general", msgs[0].ChannelName)
	assert.Equal(t, "1.0", msgs[0].TS)
	assert.Equal(t, "T1", msgs[0].TeamID)
	assert.Equal(t, "world", msgs[1].Text)
}

func TestLoadExportMessages_BadFile(t *testing.T) {
	_, err := loadExportMessages(filepath.Join(t.TempDir(), "missing.json"), "C1", "")
	assert.Error(t, err)

	path := writeTempFile(t, "broken.json", `{"not": "an array"}`)
	_, err = loadExportMessages(path, "C1", "")
	assert.Error(t, err)
}

func TestLoadExportDirectory(t *testing.T) {
	path := writeTempFile(t, "users.json", `[
		{"id": "U1", "profile": {"display_name": "alice", "real_name": "Alice A", "email": "alice@example.com"}},
		{"id": "U2", "profile": {"real_name": "Bob B"}}
	]`)

	dir, err := loadExportDirectory(path)
	require.NoError(t, err)

	prof, err := dir.Lookup(context.Background(), "U1")
	require.NoError(t, err)
	require.NotNil(t, prof)
	assert.Equal(t, "alice", prof.DisplayName)
	assert.Equal(t, "alice@example.com", prof.Email)

	prof, err = dir.Lookup(context.Background(), "U404")
	require.NoError(t, err)
	assert.Nil(t, prof, "unknown users miss without error")
}

func TestLoadExportDirectory_EmptyPath(t *testing.T) {
	dir, err := loadExportDirectory("")
	require.NoError(t, err)

	prof, err := dir.Lookup(context.Background(), "U1")
	require.NoError(t, err)
	assert.Nil(t, prof)
}
