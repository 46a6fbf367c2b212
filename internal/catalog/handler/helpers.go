package handler

import (
	"strings"

	"mostruario-service/internal/catalog/model"
	"mostruario-service/internal/catalog/service"
)

// filterSummaries applies the listing filters: brand and supplier code as
// folded substring matches, pesquisar against the product name.
func filterSummaries(in []model.ProductSummary, fabrica, codigo, pesquisar string) []model.ProductSummary {
	fab := service.Fold(strings.TrimSpace(fabrica))
	cod := service.Fold(strings.TrimSpace(codigo))
	pes := service.Fold(strings.TrimSpace(pesquisar))
	if fab == "" && cod == "" && pes == "" {
		return in
	}

	out := make([]model.ProductSummary, 0, len(in))
	for _, s := range in {
		if fab != "" && !strings.Contains(service.Fold(s.Brand), fab) {
			continue
		}
		if cod != "" && !strings.Contains(service.Fold(s.SupplierCode), cod) {
			continue
		}
		if pes != "" && !strings.Contains(service.Fold(s.Name), pes) {
			continue
		}
		out = append(out, s)
	}
	return out
}
