package catalog

import "strings"

// currencyCodes maps recognised symbols and words to normalised codes.
var currencyCodes = map[string]string{
	"₸":      "KZT",
	"тг":     "KZT",
	"тенге":  "KZT",
	"kzt":    "KZT",
	"₽":      "RUB",
	"руб":    "RUB",
	"рублей": "RUB",
	"rub":    "RUB",
	"$":      "USD",
	"usd":    "USD",
	"€":      "EUR",
	"eur":    "EUR",
}

// NormalizeCurrency maps a currency token to its code. Unknown
// non-empty tokens are upper-cased as-is; an empty token stays empty
// (the pipeline defaults it to domain.DefaultCurrency).
func NormalizeCurrency(token string) string {
	if token == "" {
		return ""
	}
	c := strings.Trim(strings.TrimSpace(strings.ToLower(token)), ".")
	if code, ok := currencyCodes[c]; ok {
		return code
	}
	return strings.ToUpper(token)
}
