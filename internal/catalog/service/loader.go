package service

import (
	"errors"
	"fmt"
	"strings"

	"mostruario-service/internal/catalog/model"
	"mostruario-service/internal/fileio"
)

// Options tunes the load; zero value uses the standard sheet label.
type Options struct {
	ProductsSheet string
}

const defaultProductsSheet = "PRODUTOS"

// grouping columns authored with merged cells; blanks inherit the nearest
// prior value
var fillHeaders = map[string]bool{
	"FORNECEDOR":        true,
	"CODIGO FORNECEDOR": true,
	"COD FORNECEDOR":    true,
	"CODIGO":            true,
	"CÓDIGO":            true,
	"MARCA":             true,
	"FABRICA":           true,
	"FÁBRICA":           true,
	"PRODUTO":           true,
}

// Load reads the catalog workbook and builds the immutable in-memory model.
// This is the only step that performs I/O; the service cannot start without
// it.
func Load(path string, opt Options) (*model.Catalog, error) {
	sheets, err := fileio.ReadWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if len(sheets) == 0 {
		return nil, errors.New("load catalog: workbook has no sheets")
	}
	return build(sheets, opt), nil
}

// table is one sheet after header normalization and forward-fill.
type table struct {
	headers []string
	rows    [][]string
	cols    columns
}

func prepare(s fileio.Sheet) table {
	if len(s.Rows) == 0 {
		return table{}
	}
	headers := make([]string, len(s.Rows[0]))
	for i, h := range s.Rows[0] {
		headers[i] = NormalizeHeader(h)
	}

	rows := make([][]string, 0, len(s.Rows)-1)
	for _, src := range s.Rows[1:] {
		row := make([]string, len(headers))
		copy(row, src)
		rows = append(rows, row)
	}
	forwardFill(headers, rows)
	return table{headers: headers, rows: rows, cols: resolveColumns(headers)}
}

// forwardFill propagates the last non-blank value of each grouping column
// downward, replicating merged spreadsheet cells.
func forwardFill(headers []string, rows [][]string) {
	for c, h := range headers {
		if !fillHeaders[h] {
			continue
		}
		carry := ""
		for r := range rows {
			if v := Clean(rows[r][c]); v != "" {
				carry = v
			} else if carry != "" {
				rows[r][c] = carry
			}
		}
	}
}

func (t table) empty() bool {
	for _, row := range t.rows {
		for _, v := range row {
			if Clean(v) != "" {
				return false
			}
		}
	}
	return true
}

// build designates the products sheet (label match, else the first sheet)
// and concatenates every other non-empty sheet into the finish table.
func build(sheets []fileio.Sheet, opt Options) *model.Catalog {
	label := opt.ProductsSheet
	if label == "" {
		label = defaultProductsSheet
	}
	prodIdx := 0
	for i, s := range sheets {
		if Fold(strings.TrimSpace(s.Name)) == Fold(label) {
			prodIdx = i
			break
		}
	}

	cat := &model.Catalog{}
	cat.Products = buildProducts(prepare(sheets[prodIdx]))
	for i, s := range sheets {
		if i == prodIdx || !s.HasData() {
			continue
		}
		t := prepare(s)
		if t.empty() {
			continue
		}
		cat.Finishes = append(cat.Finishes, buildFinishes(t)...)
	}
	return cat
}

// buildProducts deduplicates by name: the first occurrence wins for listing,
// but every row sharing the name contributes its image.
func buildProducts(t table) []model.Product {
	var out []model.Product
	index := make(map[string]int)
	for _, row := range t.rows {
		name := t.cols.cell(row, FieldProductName)
		if name == "" {
			continue
		}
		img := PublicImagePath(t.cols.cell(row, FieldProductImage))

		if i, ok := index[name]; ok {
			out[i].Images = appendImage(out[i].Images, img)
			continue
		}
		p := model.Product{
			Name:        name,
			Brand:       t.cols.cell(row, FieldBrand),
			SupplierKey: CanonicalKey(t.cols.cell(row, FieldSupplier)),
		}
		p.Images = appendImage(nil, img)
		index[name] = len(out)
		out = append(out, p)
	}
	return out
}

func appendImage(images []string, img string) []string {
	if img == "" {
		return images
	}
	for _, have := range images {
		if have == img {
			return images
		}
	}
	return append(images, img)
}

func buildFinishes(t table) []model.FinishRow {
	var out []model.FinishRow
	for _, row := range t.rows {
		f := model.FinishRow{
			FinishName:  t.cols.cell(row, FieldFinishName),
			Category:    t.cols.cell(row, FieldCategory),
			Composition: t.cols.cell(row, FieldComposition),
			Status:      t.cols.cell(row, FieldStatus),
			Restriction: t.cols.cell(row, FieldRestriction),
			Info:        t.cols.cell(row, FieldInfo),
			Image:       PublicImagePath(t.cols.cell(row, FieldImage)),
			SupplierKey: CanonicalKey(t.cols.cell(row, FieldSupplier)),
		}
		f.StatusDate, f.HasStatusDate = ResolveDate(t.cols.cell(row, FieldStatusDate))

		// forward-fill can leave a carried supplier key on an otherwise
		// blank row; only substantive rows join the finish table
		if f.FinishName == "" && f.Category == "" && f.Composition == "" && f.Status == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// PublicImagePath rewrites a source image reference into a root-relative
// public path. Anything without the public-asset marker segment becomes "";
// downstream renderers assume root-relative paths.
func PublicImagePath(p string) string {
	s := Clean(p)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\\", "/")
	i := strings.Index(s, "static")
	if i < 0 {
		return ""
	}
	tail := strings.Trim(s[i+len("static"):], "/")
	if tail == "" {
		return ""
	}
	return "/static/" + tail
}
