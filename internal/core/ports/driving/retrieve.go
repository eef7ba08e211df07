package driving

import (
	"context"

	"github.com/docbase-io/docbase/internal/core/domain"
)

// DefaultTopK is the number of passages returned when k is not given.
const DefaultTopK = 4

// RetrieveService answers questions with ranked passages from the
// knowledge base.
type RetrieveService interface {
	// Retrieve embeds the question once and scores it against every
	// stored chunk by cosine similarity, returning the top k in
	// non-increasing score order. Result length is min(k, corpus size).
	// An empty corpus or a missing embedding credential yields an empty
	// slice, never an error.
	Retrieve(ctx context.Context, question string, k int) ([]domain.ScoredChunk, error)
}
