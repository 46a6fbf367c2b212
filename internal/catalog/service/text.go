package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// decompose, drop combining marks, recompose
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases and strips diacritics ("Composição" -> "composicao").
// Applied to both indexed columns and search terms, so matching is accent-
// and case-insensitive.
func Fold(s string) string {
	out, _, err := transform.String(foldAccents, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Clean canonicalizes a raw cell value: trims whitespace and maps the
// missing-value sentinels that survive naive stringification to "".
func Clean(v string) string {
	s := strings.TrimSpace(v)
	switch s {
	case "nan", "None", "NaT":
		return ""
	}
	return s
}
