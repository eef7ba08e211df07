package driven

import (
	"context"

	"github.com/docbase-io/docbase/internal/core/domain"
)

// VisionService transcribes visible text from an image using a
// vision-capable model. The image extractor is its only consumer.
type VisionService interface {
	// Transcribe returns all visible text in the image, preserving
	// row/column order, with no added commentary. The result is used
	// verbatim (trimmed).
	Transcribe(ctx context.Context, image *domain.RawFile) (string, error)
}
