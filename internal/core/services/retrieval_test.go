package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbase-io/docbase/internal/core/domain"
)

func seedChunks(store *memoryStore, embeddings ...[]float32) {
	for i, e := range embeddings {
		store.chunks = append(store.chunks, domain.Chunk{
			ID:         string(rune('a' + i)),
			DocumentID: "doc-1",
			Index:      i,
			Text:       string(rune('A' + i)),
			Embedding:  e,
		})
	}
}

func TestRetrieve_RanksBySimilarity(t *testing.T) {
	store := newMemoryStore()
	seedChunks(store,
		[]float32{0, 1, 0},  // orthogonal to the query
		[]float32{1, 0, 0},  // identical direction
		[]float32{1, 1, 0},  // in between
		[]float32{-1, 0, 0}, // opposite
	)

	embedder := newFakeEmbedder(3)
	embedder.queries = [][]float32{{2, 0, 0}}
	svc := NewRetrievalService(embedder, store)

	results, err := svc.Retrieve(context.Background(), "кофе", 10)
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Non-increasing scores, best match first.
	assert.Equal(t, "B", results[0].Text)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.InDelta(t, -1.0, results[3].Score, 1e-6)
}

func TestRetrieve_TopKBounds(t *testing.T) {
	store := newMemoryStore()
	seedChunks(store, []float32{1, 0}, []float32{0, 1})

	embedder := newFakeEmbedder(2)
	embedder.queries = [][]float32{{1, 0}}
	svc := NewRetrievalService(embedder, store)

	// k larger than the corpus returns the whole corpus.
	results, err := svc.Retrieve(context.Background(), "q", 4)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRetrieve_DefaultK(t *testing.T) {
	store := newMemoryStore()
	seedChunks(store,
		[]float32{1, 0}, []float32{1, 0}, []float32{1, 0},
		[]float32{1, 0}, []float32{1, 0}, []float32{1, 0})

	embedder := newFakeEmbedder(2)
	embedder.queries = [][]float32{{1, 0}}
	svc := NewRetrievalService(embedder, store)

	results, err := svc.Retrieve(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestRetrieve_EmptyCorpus(t *testing.T) {
	svc := NewRetrievalService(newFakeEmbedder(3), newMemoryStore())

	results, err := svc.Retrieve(context.Background(), "anything", 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrieve_NoCredentialDegrades(t *testing.T) {
	store := newMemoryStore()
	seedChunks(store, []float32{1, 0})

	svc := NewRetrievalService(nil, store)

	results, err := svc.Retrieve(context.Background(), "anything", 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrieve_EmptyQuestion(t *testing.T) {
	svc := NewRetrievalService(newFakeEmbedder(3), newMemoryStore())

	results, err := svc.Retrieve(context.Background(), "   ", 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrieve_StableTieBreak(t *testing.T) {
	store := newMemoryStore()
	// Two identical vectors tie exactly; corpus order must hold.
	seedChunks(store, []float32{1, 0}, []float32{1, 0})

	embedder := newFakeEmbedder(2)
	embedder.queries = [][]float32{{1, 0}}
	svc := NewRetrievalService(embedder, store)

	results, err := svc.Retrieve(context.Background(), "q", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Text)
	assert.Equal(t, "B", results[1].Text)
}

func TestCosineSimilarity_ZeroNorm(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 2}, []float32{0, 0}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
}
