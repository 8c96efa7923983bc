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


package synergy

import (
	"context"
	"log/slog"

	"github.com/projecthog/synergy/ai"
	"github.com/projecthog/synergy/ai/openai"
	"github.com/projecthog/synergy/core"
	"github.com/projecthog/synergy/ingestion"
	"github.com/projecthog/synergy/search"
	"github.com/projecthog/synergy/storage"
	"github.com/projecthog/synergy/storage/badger"
	"github.com/projecthog/synergy/vectorstore"
	"github.com/projecthog/synergy/vectorstore/turbopuffer"
)

// Assistant wires the full question-answering stack: the model provider,
// the vector index, the indexing pipeline, the searcher, and (optionally)
// a local BadgerDB for bookkeeping.
type Assistant struct {
	backend     *badger.Backend
	ledger      storage.LedgerRepository
	checkpoints storage.CheckpointRepository
	provider    ai.Provider
	index       vectorstore.Index
	pipeline    *ingestion.Pipeline
	searcher    *search.Searcher
	logger      *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig    *ai.Config
	storeConfig *vectorstore.Config
	dbPath      string
	topK        int
}

// WithAIConfig supplies the model provider configuration.
func WithAIConfig(cfg *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = cfg
	}
}

// WithStoreConfig supplies the vector store configuration.
func WithStoreConfig(cfg *vectorstore.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.storeConfig = cfg
	}
}

// WithDatabasePath enables the local bookkeeping database at the given
// path. Without it the assistant keeps no ledger or checkpoints.
func WithDatabasePath(path string) AssistantOption {
	return func(o *assistantOptions) {
		o.dbPath = path
	}
}

// WithTopK sets how many rows are retrieved per question.
func WithTopK(topK int) AssistantOption {
	return func(o *assistantOptions) {
		o.topK = topK
	}
}

// NewAssistant builds a fully wired assistant. Configuration problems
// surface here as *core.ConfigError before any network call is made.
func NewAssistant(opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		aiConfig:    ai.DefaultConfig(),
		storeConfig: vectorstore.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		return nil, err
	}

	index, err := turbopuffer.NewClient(options.storeConfig)
	if err != nil {
		provider.Close()
		return nil, err
	}

	a := &Assistant{
		provider: provider,
		index:    index,
		logger:   slog.Default().With("component", "assistant"),
	}

	if options.dbPath != "" {
		backend, err := badger.OpenBackend(options.dbPath, false)
		if err != nil {
			provider.Close()
			return nil, err
		}
		ledger, err := badger.NewLedgerRepository(backend)
		if err != nil {
			backend.Close()
			provider.Close()
			return nil, err
		}
		a.backend = backend
		a.ledger = ledger
		a.checkpoints = badger.NewCheckpointRepository(backend)
	}

	pipelineOpts := []ingestion.Option{}
	if a.ledger != nil {
		pipelineOpts = append(pipelineOpts,
			ingestion.WithLedger(a.ledger),
			ingestion.WithCheckpoints(a.checkpoints))
	}
	pipeline, err := ingestion.NewPipeline(provider.Embedder(), index, pipelineOpts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.pipeline = pipeline

	searchOpts := []search.Option{}
	if options.topK > 0 {
		searchOpts = append(searchOpts, search.WithTopK(options.topK))
	}
	searcher, err := search.NewSearcher(provider.Embedder(), provider.Generator(), index, searchOpts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.searcher = searcher

	return a, nil
}

// IndexMessage indexes a single channel message.
func (a *Assistant) IndexMessage(ctx context.Context, msg core.SourceMessage) error {
	return a.pipeline.IndexMessage(ctx, msg)
}

// IndexBacklog indexes a batch of historical messages, resolving authors
// through dir. See ingestion.Pipeline.IndexBacklog.
func (a *Assistant) IndexBacklog(ctx context.Context, msgs []core.SourceMessage, dir ingestion.Directory) (*ingestion.Report, error) {
	return a.pipeline.IndexBacklog(ctx, msgs, dir)
}

// Retrieve returns the rows most relevant to a question, closest first.
func (a *Assistant) Retrieve(ctx context.Context, question string) ([]core.RetrievedRow, error) {
	return a.searcher.Retrieve(ctx, question)
}

// Answer answers a question grounded on retrieved channel context.
func (a *Assistant) Answer(ctx context.Context, question string) (string, error) {
	return a.searcher.Answer(ctx, question)
}

// LedgerRepository returns the bookkeeping ledger, or nil when no database
// path was configured.
func (a *Assistant) LedgerRepository() storage.LedgerRepository {
	return a.ledger
}

// CheckpointRepository returns the checkpoint store, or nil when no
// database path was configured.
func (a *Assistant) CheckpointRepository() storage.CheckpointRepository {
	return a.checkpoints
}

// Close releases the worker pool, the model provider, and the local
// database.
func (a *Assistant) Close() error {
	if a.pipeline != nil {
		a.pipeline.Release()
	}
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}
	if a.ledger != nil {
		if err := a.ledger.Close(); err != nil {
			a.logger.Error("error closing ledger", "err", err)
			return err
		}
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}
