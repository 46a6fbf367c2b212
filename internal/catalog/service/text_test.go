package service

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Composição", "composicao"},
		{"COMPOSIÇÃO", "composicao"},
		{"Indisponível", "indisponivel"},
		{"FÁBRICA", "fabrica"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClean(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  abc  ", "abc"},
		{"nan", ""},
		{"None", ""},
		{"NaT", ""},
		{"", ""},
		{"NAN", "NAN"},   // sentinels are case-sensitive literals
		{"none", "none"},
		{" Verniz ", "Verniz"},
	}
	for _, c := range cases {
		if got := Clean(c.in); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
