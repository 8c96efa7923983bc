// Package turbopuffer is a minimal REST client for the turbopuffer v2 API.
// It writes with cosine distance and treats a query response without rows as
// an empty result.
package turbopuffer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/projecthog/synergy/core"
	"github.com/projecthog/synergy/vectorstore"
)

const storeService = "vectorstore"

// Client implements vectorstore.Index against a turbopuffer namespace.
type Client struct {
	baseURL   string
	apiKey    string
	namespace string
	client    *http.Client
	logger    *slog.Logger
}

var _ vectorstore.Index = (*Client)(nil)

// NewClient creates a new client for the configured namespace.
//
// Returns vectorstore.Index interface to enforce abstraction.
func NewClient(config *vectorstore.Config) (vectorstore.Index, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   config.BaseURL,
		apiKey:    config.APIKey,
		namespace: config.Namespace,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    slog.Default().With("component", "turbopuffer", "namespace", config.Namespace),
	}, nil
}

type upsertRequest struct {
	UpsertRows     []core.VectorRow `json:"upsert_rows"`
	DistanceMetric string           `json:"distance_metric"`
}

type queryRequest struct {
	RankBy            []any `json:"rank_by"`
	TopK              int   `json:"top_k"`
	IncludeAttributes bool  `json:"include_attributes"`
}

type queryResponse struct {
	Rows []core.RetrievedRow `json:"rows"`
}

// Upsert writes rows in one batch with insert-or-replace-by-id semantics.
func (c *Client) Upsert(ctx context.Context, rows []core.VectorRow) error {
	body := upsertRequest{
		UpsertRows:     rows,
		DistanceMetric: "cosine_distance",
	}
	if err := c.post(ctx, "/v2/namespaces/"+c.namespace, "upsert", body, nil); err != nil {
		return err
	}

	c.logger.Debug("upserted rows", "rows", len(rows))
	return nil
}

// Query runs an ANN search for the topK rows nearest to vector. Row shape is
// not validated beyond JSON decoding; rows are returned as the store ranked
// them.
func (c *Client) Query(ctx context.Context, vector []float32, topK int) ([]core.RetrievedRow, error) {
	body := queryRequest{
		RankBy:            []any{"vector", "ANN", vector},
		TopK:              topK,
		IncludeAttributes: true,
	}

	var out queryResponse
	if err := c.post(ctx, "/v2/namespaces/"+c.namespace+"/query", "query", body, &out); err != nil {
		return nil, err
	}
	if out.Rows == nil {
		return []core.RetrievedRow{}, nil
	}
	return out.Rows, nil
}

func (c *Client) post(ctx context.Context, path, op string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("vector store request failed", "op", op, "status", resp.StatusCode)
		return &core.UpstreamError{
			Service:    storeService,
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &core.ProtocolError{Service: storeService, Reason: "response is not valid JSON"}
		}
	}
	return nil
}
