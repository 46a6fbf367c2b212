package service

import "testing"

func TestCanonicalKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"123", "123"},
		{"123.0", "123"},
		{"045", "45"},
		{"45.0", "45"},
		{"45,0", "45"},
		{"7", "7"},
		{"7.5", "7.5"},
		{"9A", "9A"},
		{"  MDF-22 ", "MDF-22"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CanonicalKey(c.in); got != c.want {
			t.Errorf("CanonicalKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCanonicalKeyIdempotent(t *testing.T) {
	for _, in := range []string{"123.0", "045", "9A", "7.5", "0045,0"} {
		once := CanonicalKey(in)
		if twice := CanonicalKey(once); twice != once {
			t.Errorf("CanonicalKey not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
