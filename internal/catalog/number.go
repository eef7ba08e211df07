// Package catalog implements heuristic price-list extraction: a
// line-oriented scanner over raw document text built on locale-tolerant
// number and currency normalisation. It is deliberately best-effort; it
// is not a table or layout parser and will misfire on multi-column
// layouts where name and price are on different logical lines.
package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// europeanStyle matches numbers like "1.234" where '.' groups thousands.
// Together with a comma in the string it identifies the European
// convention "1.234,56".
var europeanStyle = regexp.MustCompile(`\d+\.\d{3}(?:\.|\b)`)

// nonNumeric strips everything except digits and '.' for the fallback parse.
var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// NormalizeNumber parses a price token into a float, tolerating spaced
// thousands ("2 500"), dotted thousands with a comma decimal
// ("3.500,00") and plain comma decimals ("9,90"). Unparseable input
// yields 0.0, never an error.
func NormalizeNumber(raw string) float64 {
	s := strings.NewReplacer(" ", "", " ", "").Replace(raw)

	if europeanStyle.MatchString(s) && strings.Contains(s, ",") {
		// "1.234,56": drop thousands dots, comma is the decimal point.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v
	}

	s = nonNumeric.ReplaceAllString(s, "")
	if s == "" {
		return 0.0
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return v
}
