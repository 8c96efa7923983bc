package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/projecthog/synergy/ai"
	"github.com/projecthog/synergy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *ai.Config {
	return ai.NewConfig(
		ai.WithAPIKey("test-key"),
		ai.WithBaseURL(baseURL),
	)
}

func TestEmbedder_MissingAPIKey(t *testing.T) {
	cfg := ai.NewConfig() // no key
	_, err := NewEmbedder(cfg)
	require.Error(t, err)

	var configErr *core.ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Contains(t, configErr.Error(), "API key")
}

func TestEmbedder_EmbedText(t *testing.T) {
	var gotAuth string
	var gotReq map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float32{0.1, 0.2, 0.3}},
			},
		})
	}))
	defer server.Close()

	embedder, err := NewEmbedder(testConfig(server.URL))
	require.NoError(t, err)

	vector, err := embedder.EmbedText(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vector)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "text-embedding-3-small", gotReq["model"])
	assert.Equal(t, "hello world", gotReq["input"])
}

func TestEmbedder_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	embedder, err := NewEmbedder(testConfig(server.URL))
	require.NoError(t, err)

	_, err = embedder.EmbedText(context.Background(), "hello")
	require.Error(t, err)

	var upstreamErr *core.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Body, "rate limited")
}

func TestEmbedder_MissingEmbedding(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty data", body: `{"data":[]}`},
		{name: "no data field", body: `{}`},
		{name: "empty vector", body: `{"data":[{"embedding":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			embedder, err := NewEmbedder(testConfig(server.URL))
			require.NoError(t, err)

			_, err = embedder.EmbedText(context.Background(), "hello")
			var protocolErr *core.ProtocolError
			require.True(t, errors.As(err, &protocolErr))
		})
	}
}
