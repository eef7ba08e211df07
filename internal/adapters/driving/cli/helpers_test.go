package cli

import (
	"context"
	"time"

	"github.com/docbase-io/docbase/internal/core/domain"
)

// fakeServices backs all driving ports with canned data for command tests.
type fakeServices struct {
	documents []domain.Document
	items     []domain.CatalogItem
	scored    []domain.ScoredChunk
	summary   *domain.IngestSummary

	deletedIDs []string
	ingestErr  error
}

func (f *fakeServices) Ingest(_ context.Context, _ string, _ []byte) (*domain.IngestSummary, error) {
	if f.ingestErr != nil {
		return nil, f.ingestErr
	}
	return f.summary, nil
}

func (f *fakeServices) List(_ context.Context) ([]domain.Document, error) {
	return f.documents, nil
}

func (f *fakeServices) Delete(_ context.Context, id string) error {
	for _, doc := range f.documents {
		if doc.ID == id {
			f.deletedIDs = append(f.deletedIDs, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeServices) Items(_ context.Context, documentID string) ([]domain.CatalogItem, error) {
	if documentID == "" {
		return f.items, nil
	}
	var filtered []domain.CatalogItem
	for _, item := range f.items {
		if item.DocumentID == documentID {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (f *fakeServices) Retrieve(_ context.Context, _ string, k int) ([]domain.ScoredChunk, error) {
	if k > len(f.scored) {
		k = len(f.scored)
	}
	return f.scored[:k], nil
}

// setupTestServices swaps the package-level services for fakes and
// returns a cleanup restoring the originals.
func setupTestServices() (*fakeServices, func()) {
	fake := &fakeServices{
		documents: []domain.Document{
			{
				ID:        "doc-1",
				Name:      "menu.pdf",
				Type:      domain.SourceTypePDF,
				CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			},
		},
		items: []domain.CatalogItem{
			{ID: "i-1", DocumentID: "doc-1", LineNo: 1, Name: "Латте", PriceValue: 1200, Currency: "KZT", RawLine: "Латте 1200 тг"},
			{ID: "i-2", DocumentID: "doc-2", LineNo: 3, Name: "Пицца", PriceValue: 3500, Currency: "EUR", RawLine: "Пицца - 3.500,00 €"},
		},
		scored: []domain.ScoredChunk{
			{Text: "Латте 1200 тг", Score: 0.91},
			{Text: "Эспрессо 900 тг", Score: 0.74},
		},
		summary: &domain.IngestSummary{DocumentID: "doc-1", ChunkCount: 3, CatalogItemCount: 2},
	}

	origIngest := ingestService
	origRetrieve := retrieveService
	origDocument := documentService
	origCatalog := catalogService

	ingestService = fake
	retrieveService = fake
	documentService = fake
	catalogService = fake

	return fake, func() {
		ingestService = origIngest
		retrieveService = origRetrieve
		documentService = origDocument
		catalogService = origCatalog
	}
}
