// Package mock provides an in-memory vectorstore.Index for unit tests.
package mock

import (
	"context"
	"sync"

	"github.com/projecthog/synergy/core"
)

// Index is an in-memory test double for vectorstore.Index. Rows are held in
// a map keyed by row id, so it exhibits the real store's upsert-by-id
// semantics. Query ignores the vector and returns injected results.
type Index struct {
	// UpsertErr, when set, is returned by every Upsert call.
	UpsertErr error

	// QueryErr, when set, is returned by every Query call.
	QueryErr error

	// QueryRows is returned by Query (truncated to topK), in order.
	QueryRows []core.RetrievedRow

	mu           sync.Mutex
	rows         map[string]core.VectorRow
	upsertCalls  int
	queryCalls   int
	lastUpserted []core.VectorRow
}

// NewIndex creates an empty in-memory index.
func NewIndex() *Index {
	return &Index{rows: make(map[string]core.VectorRow)}
}

// Upsert stores rows by id, replacing any existing row with the same id.
func (m *Index) Upsert(ctx context.Context, rows []core.VectorRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.upsertCalls++
	if m.UpsertErr != nil {
		return m.UpsertErr
	}

	m.lastUpserted = append([]core.VectorRow(nil), rows...)
	for _, row := range rows {
		m.rows[row.ID] = row
	}
	return nil
}

// Query returns the injected result rows, at most topK of them.
func (m *Index) Query(ctx context.Context, vector []float32, topK int) ([]core.RetrievedRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queryCalls++
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}

	rows := m.QueryRows
	if topK >= 0 && len(rows) > topK {
		rows = rows[:topK]
	}
	return append([]core.RetrievedRow(nil), rows...), nil
}

// Rows returns a snapshot of all stored rows keyed by id.
func (m *Index) Rows() map[string]core.VectorRow {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]core.VectorRow, len(m.rows))
	for id, row := range m.rows {
		out[id] = row
	}
	return out
}

// LastUpserted returns the batch passed to the most recent successful Upsert.
func (m *Index) LastUpserted() []core.VectorRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.VectorRow(nil), m.lastUpserted...)
}

// UpsertCalls returns how many times Upsert was called.
func (m *Index) UpsertCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertCalls
}

// QueryCalls returns how many times Query was called.
func (m *Index) QueryCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queryCalls
}
