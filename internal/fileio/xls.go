// Parser for legacy .xls workbooks: the table width is fixed up-front and all
// cells up to it are read, instead of trusting Row.LastCol().
package fileio

import (
	"bytes"
	"errors"
	"io"

	xls "github.com/extrame/xls"
)

// computeMaxCols probes a reasonable number of columns looking for non-blank
// cells; header rows are often the widest.
func computeMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 512
	maxCols := 0

	checkRow := func(i int) {
		if i < 0 || i > int(sheet.MaxRow) {
			return
		}
		r := sheet.Row(i)
		if r == nil {
			return
		}
		for j := 0; j < probeMax; j++ {
			if v := normalizeCell(r.Col(j)); v != "" {
				if j+1 > maxCols {
					maxCols = j + 1
				}
			}
		}
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		checkRow(i)
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func readXLS(r io.Reader) ([]Sheet, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// exports from Windows tooling are usually cp1252, sometimes UTF-8
	var wb *xls.WorkBook
	tryCharsets := []string{"windows-1252", "utf-8"}
	var lastErr error
	for _, ch := range tryCharsets {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	var out []Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		maxCols := computeMaxCols(sheet)
		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for ri := 0; ri <= int(sheet.MaxRow); ri++ {
			row := sheet.Row(ri)
			cols := make([]string, maxCols)
			if row != nil {
				for j := 0; j < maxCols; j++ {
					cols[j] = normalizeCell(row.Col(j))
				}
			}
			rows = append(rows, cols)
		}
		out = append(out, Sheet{Name: sheet.Name, Rows: rows})
	}
	return out, nil
}
