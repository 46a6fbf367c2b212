package service

import (
	"testing"

	"mostruario-service/internal/catalog/model"
)

func listingCatalog() *model.Catalog {
	return &model.Catalog{Products: []model.Product{
		{Name: "Painel", Brand: "Acme", SupplierKey: "10", Images: []string{"/static/p1.png"}},
		{Name: "Mesa", Brand: "Beta", SupplierKey: "2"},
		{Name: "Cadeira", Brand: "Acme", SupplierKey: "9A"},
	}}
}

func TestProductsSortsBySupplierKey(t *testing.T) {
	got := Products(listingCatalog())
	want := []string{"2", "10", "9A"} // numeric where digit-only, lex otherwise
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i, w := range want {
		if got[i].SupplierCode != w {
			t.Errorf("position %d = %q, want %q", i, got[i].SupplierCode, w)
		}
	}
	if got[1].Image != "/static/p1.png" {
		t.Errorf("listing image = %q", got[1].Image)
	}
}

func TestProductsSortInterleavedKeys(t *testing.T) {
	cat := &model.Catalog{Products: []model.Product{
		{Name: "A", SupplierKey: "10"},
		{Name: "B", SupplierKey: "1A"},
		{Name: "C", SupplierKey: "2"},
		{Name: "D", SupplierKey: "9A"},
	}}
	got := Products(cat)
	want := []string{"2", "10", "1A", "9A"}
	for i, w := range want {
		if got[i].SupplierCode != w {
			t.Fatalf("order = %v, want %v", codesOf(got), want)
		}
	}
}

func TestKeyLessIsTotal(t *testing.T) {
	// every pair must order one way or neither, never both
	keys := []string{"2", "10", "1A", "9A", "045", ""}
	for _, a := range keys {
		for _, b := range keys {
			if a != b && keyLess(a, b) && keyLess(b, a) {
				t.Errorf("keyLess orders %q and %q both ways", a, b)
			}
			if keyLess(a, a) {
				t.Errorf("keyLess(%q, %q) is true", a, a)
			}
		}
	}
	// no cycle among digit and free-text keys
	if keyLess("2", "10") && keyLess("10", "1A") && keyLess("1A", "2") {
		t.Error("comparator cycle: 2 < 10 < 1A < 2")
	}
}

func codesOf(in []model.ProductSummary) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.SupplierCode
	}
	return out
}

func TestFindProduct(t *testing.T) {
	cat := listingCatalog()

	if p, ok := FindProduct(cat, "Mesa"); !ok || p.Brand != "Beta" {
		t.Fatalf("exact match failed: %+v %v", p, ok)
	}
	// case/accent-insensitive trimmed fallback
	if p, ok := FindProduct(cat, "  mesa "); !ok || p.Name != "Mesa" {
		t.Fatalf("fallback match failed: %+v %v", p, ok)
	}
	if _, ok := FindProduct(cat, "Sofá"); ok {
		t.Fatal("unexpected match")
	}
	if _, ok := FindProduct(cat, ""); ok {
		t.Fatal("empty name matched")
	}
}

func TestFindProductPrefersExactMatch(t *testing.T) {
	cat := &model.Catalog{Products: []model.Product{
		{Name: "MESA", Brand: "upper"},
		{Name: "Mesa", Brand: "mixed"},
	}}
	if p, _ := FindProduct(cat, "Mesa"); p.Brand != "mixed" {
		t.Fatalf("exact-match-first policy broken: %+v", p)
	}
	if p, _ := FindProduct(cat, "mesa"); p.Brand != "upper" {
		t.Fatalf("fallback should hit first folded match: %+v", p)
	}
}

func TestBrandsAndSupplierCodes(t *testing.T) {
	cat := listingCatalog()
	cat.Products = append(cat.Products, model.Product{Name: "Banco", Brand: "", SupplierKey: "2"})

	brands := Brands(cat)
	if len(brands) != 2 || brands[0] != "Acme" || brands[1] != "Beta" {
		t.Errorf("Brands = %v", brands)
	}
	codes := SupplierCodes(cat)
	want := []string{"2", "10", "9A"}
	if len(codes) != len(want) {
		t.Fatalf("codes = %v", codes)
	}
	for i, w := range want {
		if codes[i] != w {
			t.Errorf("codes[%d] = %q, want %q", i, codes[i], w)
		}
	}
}
