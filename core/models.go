package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for locally stored bookkeeping entities.
// It is generated by content-based hashing of external identifiers.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SourceMessage is one inbound channel message as delivered by the chat
// platform. It exists only for the duration of indexing and is never
// persisted by this system.
type SourceMessage struct {
	Text        string
	UserID      string
	UserName    string
	UserEmail   string
	ChannelID   string
	ChannelName string
	TS          string // platform timestamp, used as a uniqueness key
	TeamID      string
}

// Attributes is the fixed schema of filterable metadata carried from a
// document into the vector store. Rows embed it, so the projection from
// Document to VectorRow is a plain struct copy.
type Attributes struct {
	Source      string `json:"source"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	UserEmail   string `json:"user_email,omitempty"`
	TeamID      string `json:"team_id,omitempty"`
	TS          string `json:"ts"`
	URL         string `json:"url"`
}

// Document is the derived, immutable view of a SourceMessage that the
// indexing pipeline works with. Re-deriving it from the same
// (channel, ts) pair always yields the same ID.
type Document struct {
	ID      string
	Content string // display/storage text, truncated to MaxContentRunes

	// EmbeddingText is the text actually sent for vectorization. It
	// prefixes author and channel so questions naming a person or channel
	// can match even when the body never mentions them. It is never
	// written to the vector store.
	EmbeddingText string

	Attributes
}

// VectorRow is the unit persisted to the vector store.
type VectorRow struct {
	ID         string    `json:"id"`
	Vector     []float32 `json:"vector"`
	Content    string    `json:"content"`
	ParentID   string    `json:"parent_id"`
	ChunkIndex int       `json:"chunk_index"`
	Attributes
}

// RetrievedRow is one result of a similarity query. It shares ids with
// stored VectorRows but is a read-only projection; Dist is the store's
// cosine distance (lower is closer).
type RetrievedRow struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	ParentID   string  `json:"parent_id"`
	ChunkIndex int     `json:"chunk_index"`
	Dist       float64 `json:"$dist"`
	Attributes
}

// IndexEntry records that a document was indexed into the vector store.
// Entries live in the local bookkeeping ledger, keyed by
// IDFromContent(DocumentID).
type IndexEntry struct {
	Id         ID
	DocumentID string
	ChannelID  string
	TS         string
	Chunks     int
	IndexedAt  time.Time
}

// Checkpoint tracks backlog indexing progress for one channel.
type Checkpoint struct {
	ChannelID string
	LastTS    string // highest successfully indexed platform timestamp
	UpdatedAt time.Time
}
