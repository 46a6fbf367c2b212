package utils

import "testing"

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"45", 45, true},
		{"45.0", 45, true},
		{"45,5", 45.5, true},
		{"1 234,50", 1234.5, true},
		{"", 0, false},
		{"9A", 0, false},
		{"-", 0, false},
		{"1,234,567", 0, false}, // thousands commas are ambiguous, reject
	}
	for _, c := range cases {
		got, ok := ParseDecimal(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ParseDecimal(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestAllDigits(t *testing.T) {
	if !AllDigits("0123") {
		t.Error("0123 should be all digits")
	}
	for _, s := range []string{"", "9A", "1.2", "-1"} {
		if AllDigits(s) {
			t.Errorf("%q should not be all digits", s)
		}
	}
}
