package serverhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	catHnd "mostruario-service/internal/catalog/handler"
	"mostruario-service/internal/catalog/model"
	"mostruario-service/internal/config"
	"mostruario-service/internal/middleware"
	"mostruario-service/internal/render"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, cat *model.Catalog, pages *render.HTML) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))

	r.Get("/health", catHnd.Health)

	r.Get("/", catHnd.Index(cat, pages, logger))
	r.Get("/produto/{nome}", catHnd.Product(cat, pages, logger))
	r.Get("/produto/{nome}/pdf", catHnd.ProductPDF(cfg, cat, pages, logger))

	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(cfg.StaticDir))))

	return r
}
