// Package ingestion provides pipeline orchestration for indexing channel
// messages into the vector store.
//
// The Pipeline type manages the indexing workflow for one document:
//   - Chunking the embedding text under the per-chunk size bound
//   - Generating one embedding per chunk, concurrently
//   - Upserting all of the document's rows in a single batch
//
// Chunk embeddings fan out across a worker pool and join before the upsert,
// so a document is either fully written or not written at all. Backlog
// indexing processes messages strictly sequentially and collects per-message
// outcomes into a Report instead of failing the whole batch.
package ingestion
