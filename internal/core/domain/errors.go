package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a file extension outside the
	// supported set. Reported before any extraction attempt.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed indicates a format-specific parser failure.
	// Ingestion aborts and no rows are persisted.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrEmptyDocument indicates extraction succeeded but produced only
	// whitespace. Treated as an extraction failure: ingestion aborts.
	ErrEmptyDocument = errors.New("document contains no extractable text")

	// ErrEmbeddingUnavailable indicates the embedding credential is
	// missing or the embedding call failed. Ingestion of the file aborts
	// and already-computed chunks are discarded. Retrieval degrades to an
	// empty result set instead of returning this error.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrVisionUnavailable indicates the vision credential is missing,
	// so image files cannot be transcribed.
	ErrVisionUnavailable = errors.New("vision service unavailable")
)
