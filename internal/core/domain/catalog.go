package domain

import "time"

// DefaultCurrency is assumed when a price line carries no currency token.
const DefaultCurrency = "KZT"

// CatalogItem is a heuristically extracted price position: one line of
// document text that contained a recognisable price token. Items are
// best-effort and never mutated after creation.
type CatalogItem struct {
	// ID is the unique identifier for the item.
	ID string

	// DocumentID links to the document the line came from.
	DocumentID string

	// LineNo is the 1-based line number in the raw extracted text.
	LineNo int

	// Name is the item name, possibly the literal placeholder "Позиция"
	// when no name could be derived from the line or its neighbour.
	Name string

	// PriceValue is the normalised non-negative price.
	PriceValue float64

	// Currency is the normalised ISO-like code (KZT, RUB, USD, EUR, or
	// an upper-cased unknown token). Defaults to DefaultCurrency.
	Currency string

	// RawLine is the verbatim source line.
	RawLine string

	// CreatedAt is when the item was extracted.
	CreatedAt time.Time
}
