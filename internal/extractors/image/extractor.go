// Package image extracts text from photos of price lists and menus by
// delegating to a vision-capable model.
package image

import (
	"context"
	"fmt"
	"strings"

	"github.com/docbase-io/docbase/internal/core/domain"
	"github.com/docbase-io/docbase/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles JPEG/PNG images via a VisionService.
type Extractor struct {
	vision driven.VisionService
}

// New creates a new image extractor. The vision service may be nil when
// no credential is configured; extraction then fails with
// domain.ErrVisionUnavailable.
func New(vision driven.VisionService) *Extractor {
	return &Extractor{vision: vision}
}

// SourceType returns the format this extractor handles.
func (e *Extractor) SourceType() domain.SourceType {
	return domain.SourceTypeImage
}

// Extract transcribes the image. The model's output is used verbatim,
// trimmed of surrounding whitespace.
func (e *Extractor) Extract(ctx context.Context, raw *domain.RawFile) (string, error) {
	if raw == nil || len(raw.Content) == 0 {
		return "", fmt.Errorf("%w: empty image input", domain.ErrExtractionFailed)
	}
	if e.vision == nil {
		return "", domain.ErrVisionUnavailable
	}

	text, err := e.vision.Transcribe(ctx, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	return strings.TrimSpace(text), nil
}
