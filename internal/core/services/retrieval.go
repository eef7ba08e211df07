package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/docbase-io/docbase/internal/core/domain"
	"github.com/docbase-io/docbase/internal/core/ports/driven"
	"github.com/docbase-io/docbase/internal/core/ports/driving"
	"github.com/docbase-io/docbase/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrieveService = (*RetrievalService)(nil)

// RetrievalService answers questions with the top-k most similar
// chunks, scanning the entire corpus with an exact cosine-similarity
// pass.
type RetrievalService struct {
	embedder driven.EmbeddingService
	docs     driven.DocumentStore
}

// NewRetrievalService creates the retrieval service. The embedder may
// be nil when no credential is configured; Retrieve then degrades to an
// empty result set rather than failing.
func NewRetrievalService(embedder driven.EmbeddingService, docs driven.DocumentStore) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		docs:     docs,
	}
}

// Retrieve embeds the question once, scores it against every stored
// chunk and returns the top k by similarity, non-increasing. Ties keep
// corpus insertion order (stable sort). Result length is
// min(k, corpus size); an empty corpus or a missing credential yields
// an empty slice.
func (s *RetrievalService) Retrieve(ctx context.Context, question string, k int) ([]domain.ScoredChunk, error) {
	logger.Section("Retrieval")

	if k <= 0 {
		k = driving.DefaultTopK
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return []domain.ScoredChunk{}, nil
	}

	// No credential degrades to "nothing found", unlike ingestion,
	// which fails hard. Intentional asymmetry.
	if s.embedder == nil {
		logger.Warn("No embedding credential; returning no passages")
		return []domain.ScoredChunk{}, nil
	}

	queryVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	chunks, err := s.docs.ListChunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading chunks: %w", err)
	}
	if len(chunks) == 0 {
		return []domain.ScoredChunk{}, nil
	}
	logger.Debug("Scoring %d chunks", len(chunks))

	scored := make([]domain.ScoredChunk, len(chunks))
	for i, chunk := range chunks {
		scored[i] = domain.ScoredChunk{
			Text:  chunk.Text,
			Score: cosineSimilarity(queryVec, chunk.Embedding),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

// cosineSimilarity returns the normalised dot product of two vectors.
// A zero-norm vector scores 0.0 against anything; mismatched lengths
// are scored over the shorter prefix, which only happens if the corpus
// invariant of a constant dimension is already broken.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
