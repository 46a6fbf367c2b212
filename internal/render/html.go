package render

import (
	"embed"
	"html/template"
	"io"

	"mostruario-service/internal/catalog/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexData feeds the listing page.
type IndexData struct {
	Products  []model.ProductSummary
	Brands    []string
	Codes     []string
	Fabrica   string
	Codigo    string
	Pesquisar string
}

// ProductData feeds the product detail page.
type ProductData struct {
	Report       model.Report
	FinishNames  []string
	StatusesSeen []string
	SearchTerm   string
}

// NotFoundData feeds the user-facing not-found page.
type NotFoundData struct {
	Name string
}

// HTML renders the embedded pages. It is a dumb consumer of assembled data.
type HTML struct {
	t *template.Template
}

func NewHTML() (*HTML, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &HTML{t: t}, nil
}

func (h *HTML) Index(w io.Writer, data IndexData) error {
	return h.t.ExecuteTemplate(w, "index.html", data)
}

func (h *HTML) Product(w io.Writer, data ProductData) error {
	return h.t.ExecuteTemplate(w, "produto.html", data)
}

func (h *HTML) NotFound(w io.Writer, data NotFoundData) error {
	return h.t.ExecuteTemplate(w, "nao_encontrado.html", data)
}
