package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/projecthog/synergy/ai"
	"github.com/projecthog/synergy/core"
	"github.com/projecthog/synergy/storage"
	"github.com/projecthog/synergy/vectorstore"
)

// Pipeline orchestrates the indexing of channel messages: document
// construction, chunking, embedding, and idempotent upsert into the vector
// store.
type Pipeline struct {
	embedder    ai.Embedder
	index       vectorstore.Index
	ledger      storage.LedgerRepository
	checkpoints storage.CheckpointRepository
	pool        *ants.Pool
	chunkSize   int
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding and
// author-profile lookups. Default is runtime.NumCPU() / 2, with a minimum
// of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithChunkSize sets the maximum chunk length in runes.
// Default is core.MaxChunkRunes.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("chunk size must be positive, got %d", size)
		}
		p.chunkSize = size
		return nil
	}
}

// WithLedger enables local bookkeeping of indexed documents.
// Ledger writes are best-effort; a ledger failure never fails indexing.
func WithLedger(ledger storage.LedgerRepository) Option {
	return func(p *Pipeline) error {
		p.ledger = ledger
		return nil
	}
}

// WithCheckpoints enables per-channel backlog checkpoints.
func WithCheckpoints(checkpoints storage.CheckpointRepository) Option {
	return func(p *Pipeline) error {
		p.checkpoints = checkpoints
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new indexing pipeline.
func NewPipeline(embedder ai.Embedder, index vectorstore.Index, opts ...Option) (*Pipeline, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		embedder:  embedder,
		index:     index,
		pool:      pool,
		chunkSize: core.MaxChunkRunes,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IndexMessage builds a document from msg and indexes it. Messages with
// blank text are a no-op.
func (p *Pipeline) IndexMessage(ctx context.Context, msg core.SourceMessage) error {
	return p.IndexDocument(ctx, core.BuildDocument(msg))
}

// IndexDocument indexes one document: chunks its embedding text, embeds
// every chunk concurrently, and upserts all resulting rows in a single
// batch. A nil document is a no-op.
//
// Any embedding or upsert failure aborts the whole document; because the
// upsert is batched after all embeddings join, no partial row set is ever
// written. Row ids are pure functions of the document id, so re-indexing
// the same message converges to the same stored rows.
func (p *Pipeline) IndexDocument(ctx context.Context, doc *core.Document) error {
	if doc == nil {
		return nil
	}

	embeddingInput := doc.EmbeddingText
	if embeddingInput == "" {
		embeddingInput = doc.Content
	}

	chunks := core.SplitChunks(embeddingInput, p.chunkSize)
	if len(chunks) == 0 {
		return nil
	}

	rows, err := p.embedChunks(ctx, doc, chunks)
	if err != nil {
		return err
	}

	if err := p.index.Upsert(ctx, rows); err != nil {
		return err
	}

	p.logger.Info("indexed message",
		"id", doc.ID,
		"chunks", len(rows),
		"channel", doc.ChannelName,
		"user", doc.UserName)

	p.recordIndexed(ctx, doc, len(rows))
	return nil
}

// embedChunks fans one embedding task per chunk out over the worker pool and
// joins them all before returning. The first failure wins; remaining tasks
// finish but their results are discarded with the rest of the row set.
func (p *Pipeline) embedChunks(ctx context.Context, doc *core.Document, chunks []string) ([]core.VectorRow, error) {
	rows := make([]core.VectorRow, len(chunks))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for i, chunk := range chunks {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			vector, err := p.embedder.EmbedText(ctx, chunk)
			if err != nil {
				fail(fmt.Errorf("embed chunk %d of %s: %w", i, doc.ID, err))
				return
			}

			rowID := doc.ID
			if len(chunks) > 1 {
				rowID = fmt.Sprintf("%s:chunk:%d", doc.ID, i)
			}
			rows[i] = core.VectorRow{
				ID:         rowID,
				Vector:     vector,
				Content:    core.Truncate(chunk, core.MaxContentRunes),
				ParentID:   doc.ID,
				ChunkIndex: i,
				Attributes: doc.Attributes,
			}
		})
		if submitErr != nil {
			wg.Done()
			fail(submitErr)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return rows, nil
}

// recordIndexed writes a ledger entry for a freshly indexed document.
// Best-effort: the vector store already holds the rows, so a ledger failure
// is only logged.
func (p *Pipeline) recordIndexed(ctx context.Context, doc *core.Document, chunks int) {
	if p.ledger == nil {
		return
	}

	entry := &core.IndexEntry{
		DocumentID: doc.ID,
		ChannelID:  doc.ChannelID,
		TS:         doc.TS,
		Chunks:     chunks,
	}
	if err := p.ledger.RecordIndexed(ctx, entry); err != nil {
		p.logger.Warn("failed to record ledger entry", "id", doc.ID, "err", err)
	}
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
