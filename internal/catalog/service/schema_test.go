package service

import "testing"

func TestResolveColumns(t *testing.T) {
	headers := []string{"FORNECEDOR", "ACABAMENTO", "TIPO_ACABAMENTO", "COMPOSIÇÃO", "STATUS"}
	cols := resolveColumns(headers)

	want := map[Field]int{
		FieldSupplier:    0,
		FieldFinishName:  1,
		FieldCategory:    2,
		FieldComposition: 3,
		FieldStatus:      4,
	}
	for f, idx := range want {
		got, ok := cols[f]
		if !ok || got != idx {
			t.Errorf("field %d resolved to (%d, %v), want %d", f, got, ok, idx)
		}
	}
	if _, ok := cols[FieldRestriction]; ok {
		t.Errorf("restriction should be absent for these headers")
	}
}

func TestResolveColumnsPriority(t *testing.T) {
	// when both synonyms are present, the higher-priority one wins
	cols := resolveColumns([]string{"TIPO", "TIPO DE ACABAMENTO"})
	if got := cols[FieldCategory]; got != 1 {
		t.Errorf("category resolved to column %d, want 1 (TIPO DE ACABAMENTO)", got)
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  tipo de acabamento  ", "TIPO DE ACABAMENTO"},
		{"Fornecedor", "FORNECEDOR"},
		{"TIPO DE ACABAMENTO ", "TIPO DE ACABAMENTO"},
	}
	for _, c := range cases {
		if got := NormalizeHeader(c.in); got != c.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCellDegradesToEmpty(t *testing.T) {
	cols := resolveColumns([]string{"ACABAMENTO"})
	row := []string{"Verniz Fosco"}
	if got := cols.cell(row, FieldFinishName); got != "Verniz Fosco" {
		t.Fatalf("cell = %q", got)
	}
	if got := cols.cell(row, FieldCategory); got != "" {
		t.Errorf("unresolved field should read empty, got %q", got)
	}
	if got := cols.cell([]string{}, FieldFinishName); got != "" {
		t.Errorf("short row should read empty, got %q", got)
	}
}
