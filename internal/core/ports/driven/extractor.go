package driven

import (
	"context"

	"github.com/docbase-io/docbase/internal/core/domain"
)

// Extractor converts one file format into raw text.
// Each extractor is bound to exactly one domain.SourceType.
type Extractor interface {
	// SourceType returns the format this extractor handles.
	SourceType() domain.SourceType

	// Extract returns the raw text of the file. Corrupt input surfaces
	// as domain.ErrExtractionFailed, never a panic. An empty result is
	// allowed here; the pipeline treats whitespace-only text as
	// domain.ErrEmptyDocument.
	Extract(ctx context.Context, raw *domain.RawFile) (string, error)
}
