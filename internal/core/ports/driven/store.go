package driven

import (
	"context"

	"github.com/docbase-io/docbase/internal/core/domain"
)

// DocumentStore persists documents and their chunks.
type DocumentStore interface {
	// SaveDocument stores a document together with all of its chunks in
	// a single transaction. A failure must not leave a document row
	// without its chunks.
	SaveDocument(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents in insertion order.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes a document and, by cascade, its chunks and
	// catalog items.
	DeleteDocument(ctx context.Context, id string) error

	// ListChunks returns every chunk in the corpus in insertion order
	// (documents by ingestion order, chunks by index). Retrieval scans
	// this full list.
	ListChunks(ctx context.Context) ([]domain.Chunk, error)
}

// CatalogStore persists extracted price positions.
type CatalogStore interface {
	// SaveItems stores catalog items. An empty slice is a no-op.
	SaveItems(ctx context.Context, items []domain.CatalogItem) error

	// ListItems returns items for a document, or all items when
	// documentID is empty, in insertion order.
	ListItems(ctx context.Context, documentID string) ([]domain.CatalogItem, error)
}
