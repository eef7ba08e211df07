// Package extractors contains the per-format text extraction adapters.
// Each subpackage implements driven.Extractor for one source type:
//
//   - pdf: text layer of every page, in page order
//   - docx: paragraphs and table rows from the OOXML body
//   - xlsx: per-sheet headers and pipe-joined rows
//   - image: transcription via a vision-capable model
package extractors
