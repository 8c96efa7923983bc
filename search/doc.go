// Package search answers questions over indexed channel messages.
//
// A Searcher embeds the question, runs a cosine similarity query against
// the vector store, formats the retrieved rows into a plain-text context
// block, and asks the chat model to answer grounded on that block. When
// nothing relevant is retrieved the model is told so explicitly rather
// than being handed an empty block.
package search
