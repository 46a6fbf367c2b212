package service

import (
	"sort"
	"strings"

	"mostruario-service/internal/catalog/model"
	"mostruario-service/internal/utils"
)

// keyLess orders supplier keys: digit-only keys rank first and compare
// numerically among themselves (length, then lex — keys are canonical, no
// leading zeros), free-text keys follow lexicographically. The two-class
// ranking keeps the ordering total, so mixed keys never confuse the sort.
func keyLess(a, b string) bool {
	da, db := utils.AllDigits(a), utils.AllDigits(b)
	if da != db {
		return da
	}
	if da && len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// Products returns the display-ready listing: already deduplicated by name
// at load, sorted ascending by supplier key, ties kept in source order.
func Products(c *model.Catalog) []model.ProductSummary {
	out := make([]model.ProductSummary, 0, len(c.Products))
	for _, p := range c.Products {
		img := ""
		if len(p.Images) > 0 {
			img = p.Images[0]
		}
		out = append(out, model.ProductSummary{
			Name:         p.Name,
			Brand:        p.Brand,
			Image:        img,
			SupplierCode: p.SupplierKey,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return keyLess(out[i].SupplierCode, out[j].SupplierCode)
	})
	return out
}

// FindProduct looks a product up by name: exact match first, then a
// case/accent-insensitive trimmed fallback. ok=false means not found and the
// caller renders a message.
func FindProduct(c *model.Catalog, name string) (model.Product, bool) {
	for _, p := range c.Products {
		if p.Name == name {
			return p, true
		}
	}
	want := Fold(strings.TrimSpace(name))
	if want == "" {
		return model.Product{}, false
	}
	for _, p := range c.Products {
		if Fold(strings.TrimSpace(p.Name)) == want {
			return p, true
		}
	}
	return model.Product{}, false
}

// Brands lists the distinct non-blank brands, sorted, for filter UI.
func Brands(c *model.Catalog) []string {
	return distinct(c, func(p model.Product) string { return p.Brand }, sort.Strings)
}

// SupplierCodes lists the distinct non-blank supplier keys in listing order.
func SupplierCodes(c *model.Catalog) []string {
	return distinct(c, func(p model.Product) string { return p.SupplierKey }, func(s []string) {
		sort.SliceStable(s, func(i, j int) bool { return keyLess(s[i], s[j]) })
	})
}

func distinct(c *model.Catalog, get func(model.Product) string, order func([]string)) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.Products {
		v := get(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	order(out)
	return out
}
