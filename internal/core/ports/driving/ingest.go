package driving

import (
	"context"

	"github.com/docbase-io/docbase/internal/core/domain"
)

// IngestService turns an uploaded file into persisted chunks,
// embeddings and catalog items.
type IngestService interface {
	// Ingest dispatches on the filename extension, extracts raw text,
	// chunks and embeds it, persists the document with its chunks
	// atomically, then runs the independent catalog pass over the same
	// raw text. Returns a summary or one of the domain errors:
	// ErrUnsupportedFormat, ErrExtractionFailed, ErrEmptyDocument,
	// ErrEmbeddingUnavailable.
	Ingest(ctx context.Context, filename string, content []byte) (*domain.IngestSummary, error)
}

// DocumentService exposes document management to the CLI.
type DocumentService interface {
	// List returns all ingested documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document with all of its chunks and catalog items.
	Delete(ctx context.Context, id string) error
}

// CatalogService exposes extracted price positions.
type CatalogService interface {
	// Items returns catalog items for one document, or the whole
	// catalog when documentID is empty.
	Items(ctx context.Context, documentID string) ([]domain.CatalogItem, error)
}
