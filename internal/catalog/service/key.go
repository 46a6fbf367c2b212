package service

import (
	"math"
	"strconv"
	"strings"

	"mostruario-service/internal/utils"
)

// CanonicalKey renders a supplier identifier in its canonical string form:
// integer-like values lose leading zeros and decimal points ("045" and
// "45.0" both become "45"), non-integral numbers keep a minimal decimal
// form, free text passes through trimmed. The same function runs on both
// sides of the product/finish join; rows whose keys disagree after this
// simply never match.
func CanonicalKey(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	f, ok := utils.ParseDecimal(s)
	if !ok {
		return s
	}
	if r := math.Round(f); math.Abs(f-r) < 1e-9 {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
