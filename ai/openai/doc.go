// Package openai implements the ai interfaces against OpenAI-compatible
// HTTP APIs.
//
// The embedder speaks the embeddings wire protocol directly so that failures
// can be classified precisely (configuration vs. upstream vs. protocol) and
// upstream failures keep the raw response body. The generator uses the
// langchaingo chat client; its output contract is a single text completion
// and needs no such classification.
package openai
