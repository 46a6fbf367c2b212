package service

import (
	"time"

	"mostruario-service/internal/utils"
)

// spreadsheet serial day 0
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// day-first layouts tried before anything else; Go accepts unpadded
// day/month against padded layouts
var dayFirstLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2 January 2006",
	"2 Jan 2006",
}

// explicit fallback formats, in order
var fallbackLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"2006/01/02",
}

// DisplayDate is the single output format for dates.
const DisplayDate = "02/01/2006"

// ResolveDate turns a heterogeneous raw cell into a calendar date. Order:
// day-first textual parse, then spreadsheet serial number, then the explicit
// layout list. Blank or unparseable input yields ok=false, never an error.
func ResolveDate(raw string) (time.Time, bool) {
	s := Clean(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}

	// serial numbers: days since 1899-12-30, fractional part is time of day
	if f, ok := utils.ParseDecimal(s); ok {
		if f > 0 && f < 300000 {
			return serialEpoch.AddDate(0, 0, int(f)), true
		}
		return time.Time{}, false
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a resolved date for display; the zero flag renders "".
func FormatDate(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return t.Format(DisplayDate)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
