package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sheet is one tab of a workbook, rows in source order, header row included.
type Sheet struct {
	Name string
	Rows [][]string
}

// ReadWorkbook picks a parser by extension and returns every sheet of the
// document. A CSV is returned as a single-sheet workbook named after the file.
func ReadWorkbook(path string) ([]Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx":
		return readXLSX(f)
	case ".xls":
		return readXLS(f)
	case ".csv":
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return readCSV(f, base)
	default:
		return nil, fmt.Errorf("unsupported file: %s", path)
	}
}

// normalizeCell trims plain and non-breaking whitespace around a cell value.
func normalizeCell(s string) string {
	return strings.Trim(s, " \t\r\n\u00A0\u202F")
}

// HasData reports whether the sheet contains any non-blank cell below the
// header row.
func (s Sheet) HasData() bool {
	for i := 1; i < len(s.Rows); i++ {
		for _, v := range s.Rows[i] {
			if normalizeCell(v) != "" {
				return true
			}
		}
	}
	return false
}
