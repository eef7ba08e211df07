// Package xlsx extracts text from spreadsheet workbooks.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/docbase-io/docbase/internal/core/domain"
	"github.com/docbase-io/docbase/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles XLSX workbooks.
type Extractor struct{}

// New creates a new XLSX extractor.
func New() *Extractor {
	return &Extractor{}
}

// SourceType returns the format this extractor handles.
func (e *Extractor) SourceType() domain.SourceType {
	return domain.SourceTypeXlsx
}

// Extract emits, for each sheet in workbook order, a "[Sheet: <name>]"
// header line followed by one line per row containing the non-empty
// trimmed cell values joined by " | ". Blank rows are skipped.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawFile) (string, error) {
	if raw == nil || len(raw.Content) == 0 {
		return "", fmt.Errorf("%w: empty xlsx input", domain.ErrExtractionFailed)
	}

	book, err := excelize.OpenReader(bytes.NewReader(raw.Content))
	if err != nil {
		return "", fmt.Errorf("%w: opening workbook: %v", domain.ErrExtractionFailed, err)
	}
	defer book.Close()

	var parts []string
	for _, sheet := range book.GetSheetList() {
		parts = append(parts, fmt.Sprintf("[Sheet: %s]", sheet))

		rows, err := book.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("%w: reading sheet %q: %v", domain.ErrExtractionFailed, sheet, err)
		}

		for _, row := range rows {
			var cells []string
			for _, cell := range row {
				if v := strings.TrimSpace(cell); v != "" {
					cells = append(cells, v)
				}
			}
			if len(cells) > 0 {
				parts = append(parts, strings.Join(cells, " | "))
			}
		}
	}

	return strings.Join(parts, "\n"), nil
}
