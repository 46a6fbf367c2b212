package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal parses "1 234,50", "197 ,00" (NBSP/NNBSP grouping), "45.0" and
// the like. Unlike a lossy digit-scrape, the whole value must be numeric:
// free text such as "9A" does not parse.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// drop non-breaking/narrow spaces and plain grouping spaces
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "")
	s = repl.Replace(s)
	// a single comma with no dot is a decimal separator
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// AllDigits reports whether s is non-empty and made of ASCII digits only.
func AllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
