package service

import "strings"

// Field is a logical column of the catalog model. Supplier sheets are
// independently authored and never share one exact schema, so each field
// resolves against a prioritized synonym list per sheet.
type Field int

const (
	FieldFinishName Field = iota
	FieldCategory
	FieldComposition
	FieldStatus
	FieldStatusDate
	FieldRestriction
	FieldInfo
	FieldImage
	FieldSupplier
	FieldProductName
	FieldBrand
	FieldProductImage
)

var synonyms = map[Field][]string{
	FieldFinishName:  {"ACABAMENTO", "NOME ACABAMENTO", "NOME_ACABAMENTO", "DESCRICAO", "DESCRIÇÃO"},
	FieldCategory:    {"TIPO DE ACABAMENTO", "TIPO_ACABAMENTO", "TIPO ACABAMENTO", "TIPO", "CATEGORIA"},
	FieldComposition: {"COMPOSICAO", "COMPOSIÇÃO"},
	FieldStatus:      {"STATUS", "SITUACAO", "SITUAÇÃO"},
	FieldStatusDate:  {"DATA STATUS", "DATA_STATUS", "DATA DO STATUS", "DATA ATUALIZACAO", "DATA ATUALIZAÇÃO", "DATA"},
	FieldRestriction: {"RESTRICAO", "RESTRIÇÃO", "RESTRICOES", "RESTRIÇÕES"},
	FieldInfo:        {"INFO", "INFORMACAO", "INFORMAÇÃO", "INFORMACOES", "INFORMAÇÕES", "OBS", "OBSERVACAO", "OBSERVAÇÃO"},
	FieldImage:       {"IMAGEM", "IMAGEM ACABAMENTO", "FOTO"},
	FieldSupplier:    {"FORNECEDOR", "CODIGO FORNECEDOR", "COD FORNECEDOR", "CODIGO", "CÓDIGO"},

	// products sheet
	FieldProductName:  {"PRODUTO", "DESCRICAO", "DESCRIÇÃO", "NOME"},
	FieldBrand:        {"MARCA", "FABRICA", "FÁBRICA"},
	FieldProductImage: {"IMAGEM PRODUTO", "IMAGEM DO PRODUTO", "IMAGEM", "FOTO"},
}

// NormalizeHeader canonicalizes a raw column name: trim plus uppercase.
func NormalizeHeader(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// columns maps logical fields to column indexes of one sheet; missing
// fields are simply absent from the map and read as "" for every row.
type columns map[Field]int

// resolveColumns runs once per sheet against its normalized header row.
// The first synonym present wins.
func resolveColumns(headers []string) columns {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := byName[h]; !ok {
			byName[h] = i
		}
	}
	cols := make(columns)
	for field, names := range synonyms {
		for _, n := range names {
			if i, ok := byName[n]; ok {
				cols[field] = i
				break
			}
		}
	}
	return cols
}

// cell reads the resolved field from a row, cleaned; unresolved fields and
// short rows degrade to "".
func (c columns) cell(row []string, f Field) string {
	i, ok := c[f]
	if !ok || i >= len(row) {
		return ""
	}
	return Clean(row[i])
}
