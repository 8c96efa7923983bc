package synergy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projecthog/synergy/ai"
	"github.com/projecthog/synergy/core"
	"github.com/projecthog/synergy/vectorstore"
)

func testConfigs() (*ai.Config, *vectorstore.Config) {
	return ai.NewConfig(ai.WithAPIKey("sk-test")),
		vectorstore.NewConfig(vectorstore.WithAPIKey("tpuf-test"))
}

func TestNewAssistant(t *testing.T) {
	t.Run("fully wired without database", func(t *testing.T) {
		aiCfg, storeCfg := testConfigs()
		a, err := NewAssistant(WithAIConfig(aiCfg), WithStoreConfig(storeCfg))
		require.NoError(t, err)
		require.NotNil(t, a)
		defer a.Close()

		assert.NotNil(t, a.pipeline)
		assert.NotNil(t, a.searcher)
		assert.Nil(t, a.LedgerRepository())
		assert.Nil(t, a.CheckpointRepository())
	})

	t.Run("with database path", func(t *testing.T) {
		aiCfg, storeCfg := testConfigs()
		a, err := NewAssistant(
			WithAIConfig(aiCfg),
			WithStoreConfig(storeCfg),
			WithDatabasePath(filepath.Join(t.TempDir(), "synergy_db")))
		require.NoError(t, err)
		defer a.Close()

		assert.NotNil(t, a.LedgerRepository())
		assert.NotNil(t, a.CheckpointRepository())
	})

	t.Run("missing AI key", func(t *testing.T) {
		_, storeCfg := testConfigs()
		_, err := NewAssistant(
			WithAIConfig(ai.NewConfig()),
			WithStoreConfig(storeCfg))

		var cfgErr *core.ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("missing store key", func(t *testing.T) {
		aiCfg, _ := testConfigs()
		_, err := NewAssistant(
			WithAIConfig(aiCfg),
			WithStoreConfig(vectorstore.NewConfig()))

		var cfgErr *core.ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func TestAssistant_Close(t *testing.T) {
	aiCfg, storeCfg := testConfigs()
	a, err := NewAssistant(
		WithAIConfig(aiCfg),
		WithStoreConfig(storeCfg),
		WithDatabasePath(t.TempDir()))
	require.NoError(t, err)

	assert.NoError(t, a.Close())
}
