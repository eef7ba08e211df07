package domain

import "time"

// Document represents one ingested file.
// It is created once per successful ingestion and never mutated afterwards.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the original filename as supplied by the caller.
	Name string

	// Type is the resolved source format.
	Type SourceType

	// Path is where the ingested file bytes were stored locally.
	Path string

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk is a bounded, possibly-overlapping window of a document's
// normalised text. It is the unit of embedding and retrieval.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Index is the 0-based ordinal position within the document.
	// Indices for a document form a contiguous range starting at 0.
	Index int

	// Text is the chunk content, a substring of the normalised document text.
	Text string

	// Embedding is the vector representation. Its length is constant
	// across the whole corpus.
	Embedding []float32
}

// RawFile is an uploaded file before extraction.
type RawFile struct {
	// Name is the original filename, used for format dispatch.
	Name string

	// Content is the raw file bytes.
	Content []byte
}

// IngestSummary is returned to the caller after a successful ingestion.
type IngestSummary struct {
	// DocumentID identifies the persisted document.
	DocumentID string `json:"document_id"`

	// ChunkCount is the number of embedded chunks stored.
	ChunkCount int `json:"chunk_count"`

	// CatalogItemCount is the number of price positions recognised.
	CatalogItemCount int `json:"catalog_item_count"`
}

// ScoredChunk is a retrieval result: a chunk's text together with its
// cosine similarity to the query, in [-1, 1].
type ScoredChunk struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
