package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"31/12/2023", date(2023, time.December, 31), true},
		{"1/2/2023", date(2023, time.February, 1), true}, // day-first wins
		{"31-12-2023", date(2023, time.December, 31), true},
		{"2023-12-31", date(2023, time.December, 31), true},
		{"45291", date(2023, time.December, 31), true}, // serial, epoch 1899-12-30
		{"45291.0", date(2023, time.December, 31), true},
		{"12/25/2023", date(2023, time.December, 25), true}, // month-first fallback
		{"31/12/2023 14:30:00", date(2023, time.December, 31), true},
		{"", time.Time{}, false},
		{"nan", time.Time{}, false},
		{"NaT", time.Time{}, false},
		{"not a date", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := ResolveDate(c.in)
		if ok != c.ok {
			t.Errorf("ResolveDate(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("ResolveDate(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(date(2023, time.December, 31), true); got != "31/12/2023" {
		t.Errorf("FormatDate = %q, want 31/12/2023", got)
	}
	if got := FormatDate(time.Time{}, false); got != "" {
		t.Errorf("FormatDate absent = %q, want empty", got)
	}
}
