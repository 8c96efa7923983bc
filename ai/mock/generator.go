package mock

import (
	"context"
	"sync"
)

// Generator is a test double for ai.Generator. It records the question and
// context block of every call so tests can assert what would have been sent
// to the generation model.
type Generator struct {
	// AnswerFunc is called by Answer if set.
	// If nil, returns a canned answer.
	AnswerFunc func(ctx context.Context, question, contextBlock string) (string, error)

	mu        sync.Mutex
	questions []string
	contexts  []string
}

// NewGenerator creates a mock generator.
// Returns the concrete type to allow test assertions.
func NewGenerator() *Generator {
	return &Generator{}
}

// Answer records the call and returns either the injected behavior's result
// or a canned answer.
func (m *Generator) Answer(ctx context.Context, question, contextBlock string) (string, error) {
	m.mu.Lock()
	m.questions = append(m.questions, question)
	m.contexts = append(m.contexts, contextBlock)
	m.mu.Unlock()

	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, question, contextBlock)
	}
	return "mock answer: " + question, nil
}

// LastContext returns the context block of the most recent call, or "" when
// Answer was never called.
func (m *Generator) LastContext() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.contexts) == 0 {
		return ""
	}
	return m.contexts[len(m.contexts)-1]
}

// CallCount returns the number of times Answer was called.
func (m *Generator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.questions)
}
