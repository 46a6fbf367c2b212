package handler

import (
	"bytes"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"mostruario-service/internal/catalog/model"
	"mostruario-service/internal/catalog/service"
	"mostruario-service/internal/config"
	"mostruario-service/internal/render"
)

// Index serves the product listing with the optional legacy filters
// (fabrica, codigo) and the name search (pesquisar).
func Index(cat *model.Catalog, pages *render.HTML, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		fabrica := q.Get("fabrica")
		codigo := q.Get("codigo")
		pesquisar := q.Get("pesquisar")

		data := render.IndexData{
			Products:  filterSummaries(service.Products(cat), fabrica, codigo, pesquisar),
			Brands:    service.Brands(cat),
			Codes:     service.SupplierCodes(cat),
			Fabrica:   fabrica,
			Codigo:    codigo,
			Pesquisar: pesquisar,
		}
		writeHTML(w, logger, func(b *bytes.Buffer) error { return pages.Index(b, data) })
	}
}

// Product serves the detail page for one product, with the optional
// pesquisa_acabamento search term applied to its finish rows.
func Product(cat *model.Catalog, pages *render.HTML, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathName(r)
		p, ok := service.FindProduct(cat, name)
		if !ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			if err := pages.NotFound(w, render.NotFoundData{Name: name}); err != nil {
				logger.Error().Err(err).Msg("render not-found")
			}
			return
		}

		term := r.URL.Query().Get("pesquisa_acabamento")
		view := service.ResolveFinishes(cat, p, term)
		data := render.ProductData{
			Report:       service.AssembleReport(p, view),
			FinishNames:  view.FinishNames,
			StatusesSeen: view.StatusesSeen,
			SearchTerm:   term,
		}
		writeHTML(w, logger, func(b *bytes.Buffer) error { return pages.Product(b, data) })
	}
}

// ProductPDF streams the per-product PDF summary.
func ProductPDF(cfg config.Config, cat *model.Catalog, pages *render.HTML, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		name := pathName(r)
		p, ok := service.FindProduct(cat, name)
		if !ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			if err := pages.NotFound(w, render.NotFoundData{Name: name}); err != nil {
				logger.Error().Err(err).Msg("render not-found")
			}
			return
		}

		term := r.URL.Query().Get("pesquisa_acabamento")
		view := service.ResolveFinishes(cat, p, term)
		rep := service.AssembleReport(p, view)

		var buf bytes.Buffer
		if err := render.WritePDF(&buf, rep, cfg.StaticDir); err != nil {
			logger.Error().Err(err).Str("product", p.Name).Msg("pdf")
			http.Error(w, "falha ao gerar PDF", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+url.PathEscape(p.Name)+`.pdf"`)
		_, _ = w.Write(buf.Bytes())

		logger.Info().
			Str("product", p.Name).
			Str("term", term).
			Dur("elapsed", time.Since(start)).
			Msg("pdf done")
	}
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// pathName extracts and decodes the product name path parameter.
func pathName(r *http.Request) string {
	name := chi.URLParam(r, "nome")
	if dec, err := url.PathUnescape(name); err == nil {
		name = dec
	}
	return name
}

// writeHTML buffers the template output so render failures can still turn
// into a 500 instead of a half-written page.
func writeHTML(w http.ResponseWriter, logger zerolog.Logger, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		logger.Error().Err(err).Msg("render page")
		http.Error(w, "erro interno", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
