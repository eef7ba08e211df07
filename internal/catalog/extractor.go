package catalog

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxNeighbourNameLen bounds the previous-line fallback for item names.
const maxNeighbourNameLen = 120

// namePlaceholder is used when no name could be derived at all.
const namePlaceholder = "Позиция"

// priceToken matches a number optionally followed by a currency token:
// "2 500", "3.500,00 €", "2500₸", "9,90 €", "1200 тг". The grouped
// alternative requires at least one thousands group so that plain digit
// runs of any length fall through to the second alternative whole.
var priceToken = regexp.MustCompile(
	`(?i)(?P<num>\d{1,3}(?:[ .]\d{3})+(?:[.,]\d{1,2})?|\d+(?:[.,]\d{1,2})?)\s*` +
		`(?P<cur>₸|тг|тенге|kzt|₽|руб\.?|рублей|rub|\$|usd|€|eur)?`)

// multiSpace collapses runs of whitespace left by cutting the price out.
var multiSpace = regexp.MustCompile(`\s{2,}`)

// nameTrimCutset removes separator artefacts around a derived name.
const nameTrimCutset = " |:-—"

// Item is one recognised price position. DocumentID, ID and CreatedAt
// are assigned by the ingestion pipeline on persist.
type Item struct {
	// LineNo is the 1-based number of the source line among the
	// non-blank lines of the raw text.
	LineNo int

	// Name is the derived item name, or the placeholder "Позиция".
	Name string

	// PriceValue is the normalised price.
	PriceValue float64

	// Currency is the normalised code, or "" when the line had no
	// currency token.
	Currency string

	// RawLine is the verbatim (trimmed) source line.
	RawLine string
}

// Extract scans raw text line by line and returns one Item per line
// that contains a recognisable price token. Lines without one are
// skipped; this pass never fails.
func Extract(text string) []Item {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}

	var items []Item
	for i, line := range lines {
		loc := priceToken.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		num := line[loc[2]:loc[3]]
		var cur string
		if loc[4] >= 0 {
			cur = line[loc[4]:loc[5]]
		}

		items = append(items, Item{
			LineNo:     i + 1,
			Name:       deriveName(lines, i, line, loc[0], loc[1]),
			PriceValue: NormalizeNumber(num),
			Currency:   NormalizeCurrency(cur),
			RawLine:    line,
		})
	}
	return items
}

// deriveName takes the line with the matched price substring removed,
// cleans separator artefacts, and falls back to the previous line when
// nothing is left, but only if that neighbour is itself not a price
// line and short enough to look like a name.
func deriveName(lines []string, idx int, line string, matchStart, matchEnd int) string {
	name := strings.TrimSpace(line[:matchStart] + " " + line[matchEnd:])
	name = multiSpace.ReplaceAllString(name, " ")
	name = strings.Trim(name, nameTrimCutset)

	if name == "" && idx > 0 {
		prev := lines[idx-1]
		if !priceToken.MatchString(prev) && utf8.RuneCountInString(prev) <= maxNeighbourNameLen {
			name = prev
		}
	}

	if name == "" {
		name = namePlaceholder
	}
	return name
}
