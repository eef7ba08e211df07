package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SourceType is the closed set of supported document formats.
// It is resolved once from the filename at ingestion entry; every
// extractor is bound to exactly one variant.
type SourceType string

// Supported source types.
const (
	SourceTypePDF   SourceType = "pdf"
	SourceTypeDocx  SourceType = "docx"
	SourceTypeXlsx  SourceType = "xlsx"
	SourceTypeImage SourceType = "image"
)

// extensionTypes maps lower-case filename extensions to source types.
var extensionTypes = map[string]SourceType{
	".pdf":  SourceTypePDF,
	".docx": SourceTypeDocx,
	".xlsx": SourceTypeXlsx,
	".jpg":  SourceTypeImage,
	".jpeg": SourceTypeImage,
	".png":  SourceTypeImage,
}

// SourceTypeForFilename resolves the source type from a filename
// extension. Unsupported extensions are rejected here, before any I/O.
func SourceTypeForFilename(name string) (SourceType, error) {
	ext := strings.ToLower(filepath.Ext(name))
	st, ok := extensionTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return st, nil
}

// IsValid reports whether the source type is one of the supported variants.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypePDF, SourceTypeDocx, SourceTypeXlsx, SourceTypeImage:
		return true
	}
	return false
}

// String returns the string representation.
func (t SourceType) String() string {
	return string(t)
}
