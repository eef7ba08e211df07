package services

import (
	"context"
	"errors"
	"sync"

	"github.com/docbase-io/docbase/internal/core/domain"
)

// memoryStore is an in-memory DocumentStore + CatalogStore for tests.
type memoryStore struct {
	mu        sync.Mutex
	docs      []domain.Document
	chunks    []domain.Chunk
	items     []domain.CatalogItem
	saveErr   error
	itemsErr  error
	chunksErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (m *memoryStore) SaveDocument(_ context.Context, doc *domain.Document, chunks []domain.Chunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.docs = append(m.docs, *doc)
	m.chunks = append(m.chunks, chunks...)
	return nil
}

func (m *memoryStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			doc := m.docs[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memoryStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Document(nil), m.docs...), nil
}

func (m *memoryStore) DeleteDocument(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.docs[:0]
	for _, d := range m.docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	m.docs = kept

	keptChunks := m.chunks[:0]
	for _, c := range m.chunks {
		if c.DocumentID != id {
			keptChunks = append(keptChunks, c)
		}
	}
	m.chunks = keptChunks

	keptItems := m.items[:0]
	for _, it := range m.items {
		if it.DocumentID != id {
			keptItems = append(keptItems, it)
		}
	}
	m.items = keptItems
	return nil
}

func (m *memoryStore) ListChunks(_ context.Context) ([]domain.Chunk, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.chunksErr != nil {
		return nil, m.chunksErr
	}
	return append([]domain.Chunk(nil), m.chunks...), nil
}

func (m *memoryStore) SaveItems(_ context.Context, items []domain.CatalogItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.itemsErr != nil {
		return m.itemsErr
	}
	m.items = append(m.items, items...)
	return nil
}

func (m *memoryStore) ListItems(_ context.Context, documentID string) ([]domain.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if documentID == "" {
		return append([]domain.CatalogItem(nil), m.items...), nil
	}
	var out []domain.CatalogItem
	for _, it := range m.items {
		if it.DocumentID == documentID {
			out = append(out, it)
		}
	}
	return out, nil
}

// fakeEmbedder returns fixed-dimension vectors derived from text length.
type fakeEmbedder struct {
	dims    int
	err     error
	queries [][]float32 // overrides for Embed, popped in order
}

func newFakeEmbedder(dims int) *fakeEmbedder {
	return &fakeEmbedder{dims: dims}
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if len(f.queries) > 0 {
		v := f.queries[0]
		f.queries = f.queries[1:]
		return v, nil
	}
	vs, err := f.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vs[0], nil
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v := make([]float32, f.dims)
		for d := range v {
			v[d] = float32(len(t)%7) + float32(d)
		}
		out[i] = v
	}
	return out, nil
}

func (f *fakeEmbedder) Dimensions() int   { return f.dims }
func (f *fakeEmbedder) ModelName() string { return "fake-embedding" }

// fakeExtractor returns a canned text for one source type.
type fakeExtractor struct {
	sourceType domain.SourceType
	text       string
	err        error
}

func (f *fakeExtractor) SourceType() domain.SourceType { return f.sourceType }

func (f *fakeExtractor) Extract(_ context.Context, _ *domain.RawFile) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

var errBoom = errors.New("boom")
