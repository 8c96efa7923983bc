package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/projecthog/synergy/ai"
	"github.com/projecthog/synergy/core"
	"github.com/projecthog/synergy/vectorstore"
)

const (
	// DefaultTopK is the number of rows retrieved per question.
	DefaultTopK = 20

	// contextHeader introduces the retrieved block in the model prompt.
	contextHeader = "Here is retrieved channel context:\n\n"

	// noContextMessage replaces the context block when retrieval returns
	// nothing, so the model declines instead of inventing an answer.
	noContextMessage = "No relevant channel messages were retrieved for this question."
)

// Searcher retrieves indexed messages relevant to a question and generates
// a grounded answer.
type Searcher struct {
	embedder  ai.Embedder
	generator ai.Generator
	index     vectorstore.Index
	topK      int
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithTopK sets how many rows are retrieved per question.
// Default is DefaultTopK.
func WithTopK(topK int) Option {
	return func(s *Searcher) error {
		if topK < 1 {
			return fmt.Errorf("topK must be positive, got %d", topK)
		}
		s.topK = topK
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a Searcher over the given model provider and index.
func NewSearcher(embedder ai.Embedder, generator ai.Generator, index vectorstore.Index, opts ...Option) (*Searcher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		embedder:  embedder,
		generator: generator,
		index:     index,
		topK:      DefaultTopK,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Retrieve embeds the question and returns the topK nearest rows, closest
// first. The result is never nil on success.
func (s *Searcher) Retrieve(ctx context.Context, question string) ([]core.RetrievedRow, error) {
	vector, err := s.embedder.EmbedText(ctx, question)
	if err != nil {
		return nil, err
	}

	rows, err := s.index.Query(ctx, vector, s.topK)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("retrieved context", "question_runes", len([]rune(question)), "rows", len(rows))
	return rows, nil
}

// Answer retrieves context for the question and asks the chat model for a
// grounded answer. When retrieval comes back empty the model is handed an
// explicit no-context notice in place of the block.
func (s *Searcher) Answer(ctx context.Context, question string) (string, error) {
	rows, err := s.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}

	block := FormatContext(rows)
	if block == "" {
		block = noContextMessage
	} else {
		block = contextHeader + block
	}

	return s.generator.Answer(ctx, question, block)
}
