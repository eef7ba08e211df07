package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docbase-io/docbase/internal/catalog"
	"github.com/docbase-io/docbase/internal/chunker"
	"github.com/docbase-io/docbase/internal/core/domain"
	"github.com/docbase-io/docbase/internal/core/ports/driven"
	"github.com/docbase-io/docbase/internal/core/ports/driving"
	"github.com/docbase-io/docbase/internal/logger"
)

// Ensure IngestionService implements the interfaces.
var (
	_ driving.IngestService   = (*IngestionService)(nil)
	_ driving.DocumentService = (*IngestionService)(nil)
	_ driving.CatalogService  = (*IngestionService)(nil)
)

// IngestionService orchestrates extract → chunk → embed → persist, plus
// the independent catalog pass over the same raw text.
//
// The document+chunks insert is a single transaction; the catalog pass
// is a separate best-effort write afterwards. A catalog failure never
// rolls back the indexed chunks; the summary just reports zero items.
type IngestionService struct {
	extractors map[domain.SourceType]driven.Extractor
	embedder   driven.EmbeddingService
	docs       driven.DocumentStore
	items      driven.CatalogStore
	splitter   *chunker.Chunker
	uploadsDir string
}

// NewIngestionService creates the pipeline. The embedder may be nil
// when no credential is configured; Ingest then fails with
// domain.ErrEmbeddingUnavailable. uploadsDir may be empty to skip
// keeping a copy of ingested files.
func NewIngestionService(
	extractors []driven.Extractor,
	embedder driven.EmbeddingService,
	docs driven.DocumentStore,
	items driven.CatalogStore,
	splitter *chunker.Chunker,
	uploadsDir string,
) *IngestionService {
	byType := make(map[domain.SourceType]driven.Extractor, len(extractors))
	for _, e := range extractors {
		byType[e.SourceType()] = e
	}

	if splitter == nil {
		splitter = chunker.New()
	}

	return &IngestionService{
		extractors: byType,
		embedder:   embedder,
		docs:       docs,
		items:      items,
		splitter:   splitter,
		uploadsDir: uploadsDir,
	}
}

// Ingest processes one uploaded file and returns a summary.
func (s *IngestionService) Ingest(ctx context.Context, filename string, content []byte) (*domain.IngestSummary, error) {
	logger.Section("Ingestion")
	logger.Debug("File: %q (%d bytes)", filename, len(content))

	// Format dispatch happens before any I/O.
	sourceType, err := domain.SourceTypeForFilename(filename)
	if err != nil {
		return nil, err
	}
	extractor, ok := s.extractors[sourceType]
	if !ok {
		return nil, fmt.Errorf("%w: no extractor for %s", domain.ErrUnsupportedFormat, sourceType)
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	storedPath, err := s.storeFile(filename, content)
	if err != nil {
		return nil, err
	}

	raw := &domain.RawFile{Name: filename, Content: content}
	rawText, err := extractor.Extract(ctx, raw)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, domain.ErrEmptyDocument
	}
	logger.Debug("Extracted %d characters", len(rawText))

	parts := s.splitter.Split(rawText)
	if len(parts) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	logger.Debug("Chunked into %d windows", len(parts))

	vectors, err := s.embedder.EmbedBatch(ctx, parts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}
	if len(vectors) != len(parts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d chunks",
			domain.ErrEmbeddingUnavailable, len(vectors), len(parts))
	}

	doc := &domain.Document{
		ID:        uuid.New().String(),
		Name:      filename,
		Type:      sourceType,
		Path:      storedPath,
		CreatedAt: time.Now().UTC(),
	}

	chunks := make([]domain.Chunk, len(parts))
	for i, text := range parts {
		// Mismatched-dimension vectors must never reach the store.
		if len(vectors[i]) != s.embedder.Dimensions() {
			return nil, fmt.Errorf("%w: vector %d has dimension %d, want %d",
				domain.ErrEmbeddingUnavailable, i, len(vectors[i]), s.embedder.Dimensions())
		}
		chunks[i] = domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Index:      i,
			Text:       text,
			Embedding:  vectors[i],
		}
	}

	if err := s.docs.SaveDocument(ctx, doc, chunks); err != nil {
		return nil, fmt.Errorf("persisting document: %w", err)
	}
	logger.Info("Indexed document %s with %d chunks", doc.ID, len(chunks))

	itemCount := s.extractCatalog(ctx, doc.ID, rawText)

	return &domain.IngestSummary{
		DocumentID:       doc.ID,
		ChunkCount:       len(chunks),
		CatalogItemCount: itemCount,
	}, nil
}

// extractCatalog runs the best-effort price pass. It never fails the
// ingestion; on a storage error the summary reports zero items.
func (s *IngestionService) extractCatalog(ctx context.Context, documentID, rawText string) int {
	found := catalog.Extract(rawText)
	if len(found) == 0 {
		return 0
	}

	now := time.Now().UTC()
	items := make([]domain.CatalogItem, len(found))
	for i, it := range found {
		currency := it.Currency
		if currency == "" {
			currency = domain.DefaultCurrency
		}
		items[i] = domain.CatalogItem{
			ID:         uuid.New().String(),
			DocumentID: documentID,
			LineNo:     it.LineNo,
			Name:       it.Name,
			PriceValue: it.PriceValue,
			Currency:   currency,
			RawLine:    it.RawLine,
			CreatedAt:  now,
		}
	}

	if err := s.items.SaveItems(ctx, items); err != nil {
		logger.Warn("Catalog pass failed for document %s: %v", documentID, err)
		return 0
	}
	logger.Info("Recognised %d catalog items", len(items))
	return len(items)
}

// storeFile keeps a copy of the uploaded bytes under the uploads dir.
func (s *IngestionService) storeFile(filename string, content []byte) (string, error) {
	if s.uploadsDir == "" {
		return "", nil
	}
	if err := os.MkdirAll(s.uploadsDir, 0o700); err != nil {
		return "", fmt.Errorf("creating uploads directory: %w", err)
	}
	path := filepath.Join(s.uploadsDir, filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("storing uploaded file: %w", err)
	}
	return path, nil
}

// List returns all ingested documents.
func (s *IngestionService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docs.ListDocuments(ctx)
}

// Delete removes a document together with its chunks and catalog items.
func (s *IngestionService) Delete(ctx context.Context, id string) error {
	if _, err := s.docs.GetDocument(ctx, id); err != nil {
		return err
	}
	return s.docs.DeleteDocument(ctx, id)
}

// Items returns catalog items for one document, or all of them when
// documentID is empty.
func (s *IngestionService) Items(ctx context.Context, documentID string) ([]domain.CatalogItem, error) {
	return s.items.ListItems(ctx, documentID)
}
