package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/projecthog/synergy/ai"
	"github.com/projecthog/synergy/core"
)

const embedderService = "embeddings"

// Embedder implements ai.Embedder against an OpenAI-compatible embeddings
// endpoint. It issues one request per EmbedText call and never retries.
type Embedder struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *slog.Logger
}

var _ ai.Embedder = (*Embedder)(nil)

// newEmbedder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Embedder{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		model:   config.EmbeddingModel,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// EmbedText generates a vector embedding for a single text string.
// Non-2xx responses are reported as *core.UpstreamError carrying the raw
// response body; a 2xx response without an embedding vector is reported as
// *core.ProtocolError.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("generating embedding", "length", len(text))

	payload, err := json.Marshal(embeddingRequest{Model: e.model, Input: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e.logger.Error("embedding request failed", "status", resp.StatusCode)
		return nil, &core.UpstreamError{
			Service:    embedderService,
			Op:         "embed",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var out embeddingResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &core.ProtocolError{Service: embedderService, Reason: "response is not valid JSON"}
	}
	if len(out.Data) == 0 || len(out.Data[0].Embedding) == 0 {
		return nil, &core.ProtocolError{Service: embedderService, Reason: "response has no embedding vector"}
	}

	return out.Data[0].Embedding, nil
}
